package leaguefeed

type scheduleResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameResponse struct {
	ID          int          `json:"id"`
	Date        string       `json:"date"`
	Season      int          `json:"season"`
	Postseason  bool         `json:"postseason"`
	HomeTeam    teamResponse `json:"home_team"`
	VisitorTeam teamResponse `json:"visitor_team"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
}
