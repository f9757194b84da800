package models

// Profile is the single registered user of this board
type Profile struct {
	Name string `json:"name"`
	DOB  string `json:"dob"` // YYYY-MM-DD
}

// DOBLayout is the date layout used for Profile.DOB
const DOBLayout = "2006-01-02"
