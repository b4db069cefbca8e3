package generatepngs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuztalgia/queemoji/internal/cli/generatepngs"
)

func TestParseTemplate(t *testing.T) {
	var values = map[string]string{
		generatepngs.PlaceholderInputName:   "smile",
		generatepngs.PlaceholderBorderLabel: "border-black",
		generatepngs.PlaceholderSize:        "128",
	}

	for name, tc := range map[string]struct {
		give    string
		want    string
		wantErr bool
	}{
		"default":            {give: "./png/${input_name}", want: "./png/smile"},
		"all placeholders":   {give: "${size}/${border_label}/${input_name}", want: "128/border-black/smile"},
		"short form":         {give: "out/$input_name-$size", want: "out/smile-128"},
		"escaped dollar":     {give: "$$/${input_name}$$", want: "$/smile$"},
		"no placeholders":    {give: "static", want: "static"},
		"short form is long": {give: "$sizepx", wantErr: true},
		"unknown":            {give: "${name}", wantErr: true},
		"unclosed":           {give: "${input_name", wantErr: true},
		"dangling":           {give: "out/$", wantErr: true},
		"dangling in middle": {give: "out/$-x", wantErr: true},
		"png extension":      {give: "./png/${input_name}.png", wantErr: true},
		"png extension (uc)": {give: "./png/${input_name}.PNG", wantErr: true},
		"empty":              {give: " ", wantErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			tpl, err := generatepngs.ParseTemplate(tc.give)

			if tc.wantErr {
				require.ErrorIs(t, err, generatepngs.ErrMalformedTemplate)
				assert.True(t, tpl.IsZero())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.give, tpl.String())
			assert.Equal(t, tc.want, tpl.Resolve(values))
		})
	}
}

func TestMustParseTemplate(t *testing.T) {
	assert.NotPanics(t, func() { generatepngs.MustParseTemplate(generatepngs.DefaultTemplate) })
	assert.Panics(t, func() { generatepngs.MustParseTemplate("${oops}") })
}
