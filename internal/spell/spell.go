// Package spell renders text as a timed fingerspelling sequence for the
// sign-display side of the translator.
package spell

import "strings"

// Descriptions maps each letter to a short prose description of its hand
// shape, for display alongside the rendered sign.
var Descriptions = map[byte]string{
	'A': "Fist with thumb beside",
	'B': "Flat hand, thumb tucked",
	'C': "Curved hand, C-shape",
	'D': "Index up, others touch thumb",
	'E': "Fingers bent, thumb tucked",
	'F': "OK sign, 3 fingers up",
	'G': "Point sideways",
	'H': "Point sideways, 2 fingers",
	'I': "Pinky up, fist",
	'J': "Pinky up, draw J",
	'K': "Index & middle up, thumb between",
	'L': "L-shape, thumb & index",
	'M': "3 fingers over thumb",
	'N': "2 fingers over thumb",
	'O': "O-shape, fingers touch thumb",
	'P': "K hand, point down",
	'Q': "G hand, point down",
	'R': "Cross index & middle",
	'S': "Fist, thumb over fingers",
	'T': "Thumb between index & middle",
	'U': "Index & middle together up",
	'V': "Peace sign / Victory",
	'W': "3 fingers up spread",
	'X': "Index bent hook",
	'Y': "Thumb & pinky out (hang loose)",
	'Z': "Index draws Z in air",
}

// Describe returns the hand-shape description for a letter, or a generic
// fallback.
func Describe(letter byte) string {
	if d, ok := Descriptions[upper(letter)]; ok {
		return d
	}
	return "Hand sign"
}

// Sequence converts free text into the uppercase letters to fingerspell,
// dropping digits, punctuation and whitespace.
func Sequence(text string) []byte {
	var letters []byte
	for _, word := range strings.Fields(text) {
		for i := 0; i < len(word); i++ {
			c := upper(word[i])
			if c >= 'A' && c <= 'Z' {
				letters = append(letters, c)
			}
		}
	}
	return letters
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
