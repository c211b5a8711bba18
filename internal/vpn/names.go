package vpn

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName renders a client name for people: underscores become spaces
// and each word is capitalized. Existing capitals are kept, so "P2P" and
// "Double_VPN" survive intact.
func DisplayName(name string) string {
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(strings.ReplaceAll(name, "_", " "))
}

// NormalizeTerm maps a term typed against display names back to the
// client's spelling, so "united st" matches "United_States".
func NormalizeTerm(term string) string {
	return strings.Join(strings.Fields(term), "_")
}
