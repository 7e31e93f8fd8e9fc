package dto

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Usuario string `json:"usuario" binding:"notblank"`
	Senha   string `json:"senha" binding:"notblank"`
}

func (r *LoginRequest) Normalize() {
	trim(&r.Usuario, &r.Senha)
}

func init() {
	registerMessages(map[string]string{
		"LoginRequest.Usuario": "Usuário e senha são obrigatórios",
		"LoginRequest.Senha":   "Usuário e senha são obrigatórios",
	})
}

// LoginResponse is returned after a successful login. The session token
// travels in an HttpOnly cookie; Token is also returned for API clients.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Usuario string `json:"usuario"`
	Token   string `json:"token,omitempty"`
}

// CheckAuthResponse reports whether the request carries a valid session.
type CheckAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	Usuario       string `json:"usuario,omitempty"`
}
