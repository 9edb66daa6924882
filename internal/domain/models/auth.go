package models

// LoginRequest carries the four digit PIN from the keypad.
type LoginRequest struct {
	PIN string `json:"pin" binding:"required,len=4"`
}
