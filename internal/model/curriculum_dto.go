package model

// CurriculumFile is a rendered curriculum ready to stream back to the
// caller. Nothing is persisted for curricula.
type CurriculumFile struct {
	Data        []byte
	ContentType string
	FileName    string
}
