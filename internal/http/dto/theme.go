package dto

type ThemeRequest struct {
	Theme string `json:"theme"`
}
