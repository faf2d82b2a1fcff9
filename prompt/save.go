package prompt

// ConfirmSave asks whether the finished document should be written to disk
// and collects the filename prefix.
func (s *Session) ConfirmSave() (string, bool) {
	if !s.yesNo("\nSave the metadata to a file?") {
		return "", false
	}
	return s.input("Filename prefix", false, "metadata"), true
}
