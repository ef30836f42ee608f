package types

// MatchReport describes the overlap between a resume's extracted skills and a
// role's required skills. Matched and Missing partition the deduplicated
// required set; Score is |matched| / |required| * 100 rounded to one decimal,
// defined as 0 when the required set is empty.
type MatchReport struct {
	Role          string   `json:"role"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Score         float64  `json:"match_score"`
}

// RankedQuestion is a catalog question scored against a resume. Rank is
// 1-based and stable for ties by catalog order.
type RankedQuestion struct {
	Question   Question   `json:"question"`
	Relevance  float64    `json:"relevance"`
	Rank       int        `json:"rank"`
	Difficulty Difficulty `json:"difficulty"`
}

// ResumeStats are simple lexical statistics about the analyzed resume.
type ResumeStats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Skills     int `json:"skills"`
}

// Analysis is the full result of one analysis request: extracted skills, the
// role match report, ranked questions per category, and summary statistics.
// It is request-scoped and never shared or cached across requests.
type Analysis struct {
	SessionID      string                        `json:"session_id"`
	Role           string                        `json:"role"`
	Skills         []string                      `json:"skills"`
	Match          MatchReport                   `json:"match"`
	Questions      map[Category][]RankedQuestion `json:"questions"`
	Stats          ResumeStats                   `json:"stats"`
	Recommendation string                        `json:"recommendation"`
}
