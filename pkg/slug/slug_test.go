// Copyright (c) 2026 Holospace. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/holospace/holospace/pkg/slug"
)

/*
TestFrom covers the slug transformation pipeline end to end.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Space Station Alpha", "space-station-alpha"},
		{"numbers_kept", "Cyberpunk City 2077", "cyberpunk-city-2077"},
		{"accents_removed", "Café Été", "cafe-ete"},
		{"special_chars", "VR!!! Tutorial??? Island", "vr-tutorial-island"},
		{"leading_trailing", "  --Ancient Rome VR--  ", "ancient-rome-vr"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
