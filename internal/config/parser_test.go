package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/goalboard/goalboard/pkg/errors"
)

func writeBoardFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validBoard = `
version: "1.0"
name: My goals
goals:
  - name: Health
    items:
      - kind: detailed
        title: Steps
        value: 9/10
        message: Almost there
        tint: blue
      - kind: plain
        title: Daily login
  - name: Social
    items:
      - kind: note
        title: Invite friends
        message: Earn rewards
      - kind: task
        title: Sync
        message: Upload data
        button_label: Sync now
      - kind: badge
        title: Streak
        icon: "🔥"
        tint: yellow
`

func TestParseBoardDecodesEveryKind(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, validBoard)

	board, err := ParseBoard(path)
	require.NoError(t, err)
	require.Equal(t, "My goals", board.Name)
	require.Len(t, board.Goals, 2)

	health := board.Goals[0]
	require.Len(t, health.Items, 2)

	detailed := health.Items[0]
	require.Equal(t, "detailed", detailed.Kind)
	require.NotNil(t, detailed.Detailed)
	require.Equal(t, "9/10", detailed.Detailed.Value)
	require.Equal(t, "blue", detailed.Detailed.Tint)
	require.Nil(t, detailed.Task)

	plain := health.Items[1]
	require.Equal(t, "plain", plain.Kind)
	require.Nil(t, plain.Detailed)

	social := board.Goals[1]
	require.NotNil(t, social.Items[0].Note)
	require.Equal(t, "Sync now", social.Items[1].Task.ButtonLabel)
	require.Equal(t, "🔥", social.Items[2].Badge.Icon)
}

func TestParseBoardMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseBoard(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseBoardMalformedYAMLReportsLine(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, "version: \"1.0\"\nname: [broken\n")

	_, err := ParseBoard(path)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Greater(t, parseErr.Line, 0)
}

func TestParseBoardUnknownKind(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `
version: "1.0"
name: My goals
goals:
  - name: Health
    items:
      - kind: gauge
        title: Steps
`)

	_, err := ParseBoard(path)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Contains(t, valErr.Field, "kind")
}

func TestParseBoardRejectsBadTint(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `
version: "1.0"
name: My goals
goals:
  - name: Health
    items:
      - kind: detailed
        title: Steps
        value: 9/10
        message: Almost there
        tint: mauve
`)

	_, err := ParseBoard(path)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Contains(t, valErr.Field, "tint")
}

func TestParseBoardRejectsMissingTaskFields(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `
version: "1.0"
name: My goals
goals:
  - name: Health
    items:
      - kind: task
        title: Sync
        message: Upload data
`)

	_, err := ParseBoard(path)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestParseBoardRejectsBadVersion(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `
version: latest
name: My goals
goals:
  - name: Health
    items:
      - kind: plain
        title: Daily login
`)

	_, err := ParseBoard(path)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Contains(t, valErr.Field, "version")
}

func TestValidateBoardRejectsDuplicateTitles(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `
version: "1.0"
name: My goals
goals:
  - name: Health
    items:
      - kind: plain
        title: Daily login
      - kind: plain
        title: daily login
`)

	_, err := ParseBoard(path)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Contains(t, valErr.Message, "duplicate")
}

func TestValidateBoardNil(t *testing.T) {
	t.Parallel()

	err := ValidateBoard(nil)
	require.Error(t, err)
}
