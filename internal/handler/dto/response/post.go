package response

type GeneratePostResponse struct {
	Success bool   `json:"success"`
	Holiday string `json:"holiday"`
	Caption string `json:"caption"`
	Message string `json:"message"`
}
