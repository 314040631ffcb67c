package service

// CodeGenerator produces candidate pickup confirmation codes.
type CodeGenerator interface {
	// Generate returns a fresh 6-character code over A-Z and 0-9.
	Generate() (string, error)
}
