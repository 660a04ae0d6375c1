package models

// SolvedWord attributes a puzzle word to the player who found it.
// SolvedBy is empty until the word is solved and never changes afterwards.
type SolvedWord struct {
	Word     string `json:"word"`
	SolvedBy string `json:"solved_by,omitempty"`
}

// IsSolved reports whether the word has been attributed.
func (s SolvedWord) IsSolved() bool {
	return s.SolvedBy != ""
}
