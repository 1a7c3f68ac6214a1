package together

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/git-together/internal/config"
)

// fakeStore is an in-memory config.Store.
type fakeStore struct {
	data map[string]string
}

func newFakeStore(pairs map[string]string) *fakeStore {
	data := make(map[string]string, len(pairs))
	for k, v := range pairs {
		data[k] = v
	}
	return &fakeStore{data: data}
}

func (s *fakeStore) Get(key string) (string, error) {
	value, ok := s.data[key]
	if !ok {
		return "", &config.KeyNotFoundError{Key: key}
	}
	return value, nil
}

func (s *fakeStore) Set(key, value string) error {
	s.data[key] = value
	return nil
}

// fakeCommand records Signoff mutations.
type fakeCommand struct {
	env  map[string]string
	args []string
}

func newFakeCommand() *fakeCommand {
	return &fakeCommand{env: make(map[string]string)}
}

func (c *fakeCommand) Setenv(key, value string) { c.env[key] = value }
func (c *fakeCommand) AppendArg(arg string)     { c.args = append(c.args, arg) }

func TestParseAuthor(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Author
		wantErr bool
	}{
		{
			name: "bare local part gets domain",
			raw:  "Amos Burton; aburton",
			want: Author{Name: "Amos Burton", Email: "aburton@rocinante.com"},
		},
		{
			name: "full address used verbatim",
			raw:  "Bobbie Draper; bdraper@mars.mil",
			want: Author{Name: "Bobbie Draper", Email: "bdraper@mars.mil"},
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  Alex Kamal ;  akamal  ",
			want: Author{Name: "Alex Kamal", Email: "akamal@rocinante.com"},
		},
		{
			name:    "missing separator",
			raw:     "Naomi Nagata",
			wantErr: true,
		},
		{
			name:    "empty name",
			raw:     "; nnagata",
			wantErr: true,
		},
		{
			name:    "empty email seed",
			raw:     "Chrisjen Avasarala;",
			wantErr: true,
		},
		{
			name:    "empty record",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAuthor("rocinante.com", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidAuthorError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.raw, invalid.Raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetAuthors_NoDomain(t *testing.T) {
	store := newFakeStore(map[string]string{
		"authors.jh": "James Holden; jholden",
	})
	gt := New(store, nil)

	_, err := gt.GetAuthors([]string{"jh"})
	require.Error(t, err)
	assert.True(t, config.IsKeyNotFound(err))
}

func TestGetAuthors(t *testing.T) {
	store := newFakeStore(map[string]string{
		"domain":     "rocinante.com",
		"authors.jh": "",
		"authors.nn": "Naomi Nagata",
		"authors.ab": "Amos Burton; aburton",
		"authors.ak": "Alex Kamal; akamal",
		"authors.ca": "Chrisjen Avasarala;",
		"authors.bd": "Bobbie Draper; bdraper@mars.mil",
		"authors.jm": "Joe Miller; jmiller@starhelix.com",
	})
	gt := New(store, nil)

	for _, inits := range [][]string{{"jh"}, {"nn"}, {"ca"}, {"jh", "bd"}} {
		_, err := gt.GetAuthors(inits)
		assert.Error(t, err, "inits %v", inits)
	}

	authors, err := gt.GetAuthors([]string{"ab", "ak"})
	require.NoError(t, err)
	assert.Equal(t, []Author{
		{Name: "Amos Burton", Email: "aburton@rocinante.com"},
		{Name: "Alex Kamal", Email: "akamal@rocinante.com"},
	}, authors)

	authors, err = gt.GetAuthors([]string{"ab", "bd", "jm"})
	require.NoError(t, err)
	assert.Equal(t, []Author{
		{Name: "Amos Burton", Email: "aburton@rocinante.com"},
		{Name: "Bobbie Draper", Email: "bdraper@mars.mil"},
		{Name: "Joe Miller", Email: "jmiller@starhelix.com"},
	}, authors)
}

func TestGetAuthors_ErrorKinds(t *testing.T) {
	store := newFakeStore(map[string]string{
		"domain":     "rocinante.com",
		"authors.jh": "",
	})
	gt := New(store, nil)

	_, err := gt.GetAuthors([]string{"zz"})
	var notFound *AuthorNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "zz", notFound.Initial)
	assert.True(t, config.IsKeyNotFound(err), "store cause should stay reachable")

	_, err = gt.GetAuthors([]string{"jh"})
	var invalid *InvalidAuthorError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "", invalid.Raw)
}

func TestGetAuthors_DuplicatesResolvedIndependently(t *testing.T) {
	store := newFakeStore(map[string]string{
		"domain":     "rocinante.com",
		"authors.ab": "Amos Burton; aburton",
	})
	gt := New(store, nil)

	authors, err := gt.GetAuthors([]string{"ab", "ab"})
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, authors[0], authors[1])
}

func TestSetActive(t *testing.T) {
	store := newFakeStore(map[string]string{
		"domain":     "rocinante.com",
		"authors.jh": "James Holden; jholden",
		"authors.nn": "Naomi Nagata; nnagata",
	})
	gt := New(store, nil)

	require.NoError(t, gt.SetActive([]string{"jh"}))
	active, err := gt.GetActive()
	require.NoError(t, err)
	assert.Equal(t, []string{"jh"}, active)

	require.NoError(t, gt.SetActive([]string{"jh", "nn"}))
	active, err = gt.GetActive()
	require.NoError(t, err)
	assert.Equal(t, []string{"jh", "nn"}, active)

	assert.Equal(t, "jh+nn", store.data["active"])
}

func TestSetActive_FailureLeavesRosterUnchanged(t *testing.T) {
	store := newFakeStore(map[string]string{
		"active":     "jh",
		"domain":     "rocinante.com",
		"authors.jh": "James Holden; jholden",
	})
	gt := New(store, nil)

	err := gt.SetActive([]string{"jh", "zz"})
	require.Error(t, err)
	assert.Equal(t, "jh", store.data["active"])
}

func TestGetActive_MissingKey(t *testing.T) {
	gt := New(newFakeStore(nil), nil)

	_, err := gt.GetActive()
	require.Error(t, err)
	assert.True(t, config.IsKeyNotFound(err))
}

func TestClearActive(t *testing.T) {
	store := newFakeStore(map[string]string{"active": "jh+nn"})
	gt := New(store, nil)

	require.NoError(t, gt.ClearActive())
	// Clearing needs no domain or author records.
	active, err := gt.GetActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestRotateActive(t *testing.T) {
	store := newFakeStore(map[string]string{
		"active":     "jh+nn+ab",
		"domain":     "rocinante.com",
		"authors.jh": "James Holden; jholden",
		"authors.nn": "Naomi Nagata; nnagata",
		"authors.ab": "Amos Burton; aburton",
	})
	gt := New(store, nil)

	require.NoError(t, gt.RotateActive())
	active, err := gt.GetActive()
	require.NoError(t, err)
	assert.Equal(t, []string{"nn", "ab", "jh"}, active)

	// A full cycle restores the original order.
	require.NoError(t, gt.RotateActive())
	require.NoError(t, gt.RotateActive())
	active, err = gt.GetActive()
	require.NoError(t, err)
	assert.Equal(t, []string{"jh", "nn", "ab"}, active)
}

func TestRotateActive_EmptyRoster(t *testing.T) {
	store := newFakeStore(map[string]string{
		"active": "",
		"domain": "rocinante.com",
	})
	gt := New(store, nil)

	require.NoError(t, gt.RotateActive())
	active, err := gt.GetActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSignoff(t *testing.T) {
	store := newFakeStore(map[string]string{
		"domain":     "rocinante.com",
		"authors.jh": "James Holden; jholden",
		"authors.nn": "Naomi Nagata; nnagata",
		"authors.ab": "Amos Burton; aburton",
	})
	gt := New(store, nil)

	tests := []struct {
		name     string
		active   string
		wantEnv  map[string]string
		wantArgs []string
	}{
		{
			name:    "empty roster attributes nobody",
			active:  "",
			wantEnv: map[string]string{},
		},
		{
			name:   "solo author",
			active: "jh",
			wantEnv: map[string]string{
				"GIT_AUTHOR_NAME":  "James Holden",
				"GIT_AUTHOR_EMAIL": "jholden@rocinante.com",
			},
		},
		{
			name:   "pair adds committer and signoff",
			active: "jh+nn",
			wantEnv: map[string]string{
				"GIT_AUTHOR_NAME":     "James Holden",
				"GIT_AUTHOR_EMAIL":    "jholden@rocinante.com",
				"GIT_COMMITTER_NAME":  "Naomi Nagata",
				"GIT_COMMITTER_EMAIL": "nnagata@rocinante.com",
			},
			wantArgs: []string{"--signoff"},
		},
		{
			name:   "third member validated but not attributed",
			active: "jh+nn+ab",
			wantEnv: map[string]string{
				"GIT_AUTHOR_NAME":     "James Holden",
				"GIT_AUTHOR_EMAIL":    "jholden@rocinante.com",
				"GIT_COMMITTER_NAME":  "Naomi Nagata",
				"GIT_COMMITTER_EMAIL": "nnagata@rocinante.com",
			},
			wantArgs: []string{"--signoff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.Set("active", tt.active))
			cmd := newFakeCommand()
			require.NoError(t, gt.Signoff(cmd))
			assert.Equal(t, tt.wantEnv, cmd.env)
			assert.Equal(t, tt.wantArgs, cmd.args)
		})
	}
}

func TestSignoff_NoPartialMutationOnError(t *testing.T) {
	store := newFakeStore(map[string]string{
		"active":     "jh+zz",
		"domain":     "rocinante.com",
		"authors.jh": "James Holden; jholden",
	})
	gt := New(store, nil)

	cmd := newFakeCommand()
	err := gt.Signoff(cmd)
	var notFound *AuthorNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, cmd.env)
	assert.Empty(t, cmd.args)
}

func TestSignoff_MissingActive(t *testing.T) {
	store := newFakeStore(map[string]string{"domain": "rocinante.com"})
	gt := New(store, nil)

	err := gt.Signoff(newFakeCommand())
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*config.KeyNotFoundError)))
}
