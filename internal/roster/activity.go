package roster

// Activity is a named extracurricular offering. The participant list
// keeps insertion order; each email appears at most once.
// MaxParticipants is advertised to clients but not enforced on signup.
type Activity struct {
	Description     string   `yaml:"description" json:"description"`
	Schedule        string   `yaml:"schedule" json:"schedule"`
	MaxParticipants int      `yaml:"max_participants" json:"max_participants"`
	Participants    []string `yaml:"participants" json:"participants"`
}

func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
