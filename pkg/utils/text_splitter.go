package utils

// SplitText breaks text into rune-based chunks of at most chunkSize, each
// chunk sharing `overlap` runes with its predecessor so no sentence is cut
// off from its context. Chunks never drop data; a word may straddle two
// chunks.
func SplitText(text string, chunkSize int, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		// overlap >= chunkSize would loop forever
		step = chunkSize
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
