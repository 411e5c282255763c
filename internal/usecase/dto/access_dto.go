package dto

// AccessCheckRequest - запрос решения гейта для экрана
type AccessCheckRequest struct {
	Route string `json:"route" validate:"required,max=512"`
}

// AccessCheckResponse - решение гейта. Причина отказа наружу не отдаётся.
type AccessCheckResponse struct {
	Outcome  string `json:"outcome"`
	Redirect string `json:"redirect,omitempty"`
}
