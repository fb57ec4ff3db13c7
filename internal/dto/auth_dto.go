package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	UniandesCode    string `json:"uniandes_code"`
	Magistral       string `json:"magistral"`
	Complementarios string `json:"complementarios"`
	Password        string `json:"password"`
}

// OKResponse is the reply of login, register, logout and set_week.
type OKResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type MeResponse struct {
	Logged bool `json:"logged"`
}
