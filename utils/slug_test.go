package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Epoxy Flooring":            "epoxy-flooring",
		"  PU  Flooring  ":          "pu-flooring",
		"Crack & Joint Filling":     "crack-joint-filling",
		"Waterproofing (Terrace)":   "waterproofing-terrace",
		"--already-slugged--":       "already-slugged",
		"MIXED case With  Numbers3": "mixed-case-with-numbers3",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestParseList(t *testing.T) {
	assert.Equal(t,
		[]string{"Durable", "Seamless", "Chemical resistant"},
		ParseList("Durable, Seamless\nChemical resistant"))

	assert.Equal(t, []string{}, ParseList(""))
	assert.Equal(t, []string{}, ParseList(" , \n , "))
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+917339723912", "917339723912", "+91 73397 23912", "(91) 73397-23912"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "phone %q", phone)
	}

	invalid := []string{"", "abc", "0123456", "12"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "phone %q", phone)
	}
}
