package dto

type ToggleTopicRequest struct {
	Topic string `json:"topic" binding:"required" example:"Lógica"`
}

type SelectionResponse struct {
	Selected []string `json:"selected" example:"Conjuntos,Lógica"`
	Mirror   string   `json:"mirror" example:"Conjuntos, Lógica"`
	Topic    string   `json:"topic" example:"Lógica"`
	Active   bool     `json:"active" example:"true"`
}

type StatsResponse struct {
	Attempts        int `json:"attempts" example:"12"`
	Correct         int `json:"correct" example:"9"`
	Accuracy        int `json:"accuracy" example:"75"`
	Streak          int `json:"streak" example:"3"`
	UniqueQuestions int `json:"unique_questions" example:"10"`
}
