package handler

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,username_charset"`
	Password string `json:"password" validate:"required,min=8,max=100,password_strength"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Role     string `json:"role"     validate:"role"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}
