package models

type LoginPage struct {
	Message string
	Error   bool
}

type RegisterPage struct {
	Message string
	Error   bool
}

type ProfilePage struct {
	Username string
}
