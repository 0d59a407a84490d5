package brain

import "strings"

// chunkWords splits text into word windows of size words with overlap
// words shared between consecutive chunks. overlap must be smaller than
// size; the last chunk may be shorter.
func chunkWords(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if size <= 0 {
		size = 200
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	step := size - overlap
	var chunks []string
	for start := 0; start < len(words); start += step {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
