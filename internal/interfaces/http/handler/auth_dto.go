package handler

// RegisterRequest is the request body for shop registration
type RegisterRequest struct {
	ShopName    string `json:"shopName" binding:"required,max=200"`
	Address     string `json:"address" binding:"max=500"`
	PhoneNumber string `json:"phoneNumber" binding:"max=50"`
	Email       string `json:"email" binding:"required,email,max=200"`
	Password    string `json:"password" binding:"required,min=6,max=128"`
}

// RegisterResponse is the response body for successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	ShopID  string `json:"shopId"`
}

// LoginRequest is the request body for shop login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login
type LoginResponse struct {
	Token    string `json:"token"`
	ShopName string `json:"shopName"`
	ShopID   string `json:"shopId"`
}
