package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/tailorcss"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailorcss.yaml")
	configContent := `
verbose: true

generate:
  paths:
    - web/templates
    - web/partials
  output: web/static/tailored.css
  minify: true
  important: true
  tab-spacing: 2
  newline: "\r\n"

check:
  stylesheet: web/static/tailored.css
  strict: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, []string{"web/templates", "web/partials"}, k.Strings("generate.paths"))
	assert.True(t, k.Bool("check.strict"))

	opts := buildOptions()
	assert.Equal(t, "web/static/tailored.css", opts.OutputPath)
	assert.True(t, opts.MinifyOutput)
	assert.True(t, opts.SetImportant)
	assert.Equal(t, 2, opts.TabSpacing)
	assert.Equal(t, "\r\n", opts.NewLineChar)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.tailorcss.yaml"))

	opts := buildOptions()
	assert.Equal(t, tailorcss.DefaultOptions(), opts)

	collect := buildCollectOptions()
	assert.Equal(t, []string{".html"}, collect.Extensions)
	assert.False(t, collect.RespectGitignore)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailorcss.yaml")
	configContent := `
generate:
  output: from-file.css
check:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("TAILORCSS_GENERATE_OUTPUT", "from-env.css")
	t.Setenv("TAILORCSS_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.css", k.String("generate.output"))
	assert.True(t, getBool("check.strict", false))
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailorcss.yaml")
	configContent := `
generate:
  minify: false
  tab-spacing: 2
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	addGenerateFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--config", configPath, "--minify", "-o", "out/site.css"}))

	require.NoError(t, loadConfig(cmd))

	opts := buildOptions()
	assert.True(t, opts.MinifyOutput, "explicit flag wins over file")
	assert.Equal(t, "out/site.css", opts.OutputPath)
	assert.Equal(t, 2, opts.TabSpacing, "unchanged flag default must not override file")
	assert.Equal(t, "\n", opts.NewLineChar)
}

func TestUnescapeNewline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "real newline", in: "\n", want: "\n"},
		{name: "escaped crlf", in: `\r\n`, want: "\r\n"},
		{name: "plain text", in: "|", want: "|"},
		{name: "invalid escape kept", in: `\q`, want: `\q`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unescapeNewline(tt.in))
		})
	}
}

func TestResolvePaths(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("generate.paths", []string{"from-config"}))

	assert.Equal(t, []string{"a", "b"}, resolvePaths([]string{"a", "b"}))
	assert.Equal(t, []string{"from-config"}, resolvePaths(nil))
}

func TestPrintResult(t *testing.T) {
	result, err := tailorcss.Generate(`<div class="pt30"></div>`, tailorcss.Options{})
	require.NoError(t, err)

	tests := []struct {
		mode string
		want string
	}{
		{mode: printMinified, want: ".pt30{padding-top:30px;}\n"},
		{mode: printFormatted, want: ".pt30 {\n    padding-top: 30px;\n}\n\n"},
		{mode: printNone, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printResult(&buf, result, tt.mode))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printResult(&buf, result, printJSON))
		assert.Contains(t, buf.String(), `"padding-top"`)
	})

	t.Run("unknown mode", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, printResult(&buf, result, "yaml"))
	})
}

func TestGenerateCommand(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(`<div class="w1200 container"></div>`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`class="p40"`), 0644))
	outPath := filepath.Join(dir, "dist", "tailored.css")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{
		"generate", dir,
		"--config", filepath.Join(dir, "missing.yaml"),
		"--output", outPath,
		"--minify",
		"--print", "minified",
		"--quiet=false",
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, ".w1200{width:1200px;}\n", stdout.String())

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, ".w1200{width:1200px;}", string(written))
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"TAILORCSS_GENERATE_TAB_SPACING", "generate.tab-spacing"},
		{"TAILORCSS_GENERATE_OUTPUT", "generate.output"},
		{"TAILORCSS_CHECK_STRICT", "check.strict"},
		{"TAILORCSS_VERBOSE", "verbose"},
		{"TAILORCSS_GENERATE_PATHS", "generate.paths"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestEnvVarSetsTabSpacing(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailorcss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("generate:\n  tab-spacing: 8\n"), 0644))

	t.Setenv("TAILORCSS_GENERATE_TAB_SPACING", "2")

	require.NoError(t, loadConfigFromPath(configPath))
	assert.Equal(t, 2, buildOptions().TabSpacing)
}

func TestCheckCommand_FailsWithoutExiting(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(`<div class="w10 h10"></div>`), 0644))
	stylesheet := filepath.Join(dir, "tailored.css")
	require.NoError(t, os.WriteFile(stylesheet, []byte(".w10{width:10px;}"), 0644))

	rootCmd.SetArgs([]string{
		"check", dir,
		"--config", filepath.Join(dir, "missing.yaml"),
		"--stylesheet", stylesheet,
		"--quiet",
	})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.ErrorIs(t, err, errCheckFailed)
}
