package user

type UserResponse struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	ModifiedAt string `json:"modifiedAt"`
}
