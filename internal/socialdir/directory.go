package socialdir

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	_ "embed"

	"catchup-service/internal/logging"
)

//go:embed team_social_accounts.json
var defaultAccountsJSON []byte

// Service serves team social account lookups backed by a Store.
type Service struct {
	store  *Store
	logger *slog.Logger
}

// NewService constructs a Service and loads the bundled account directory.
// A malformed directory file degrades to an empty directory, logged.
func NewService(logger *slog.Logger) *Service {
	svc := &Service{store: NewStore(), logger: logger}
	if err := svc.load(defaultAccountsJSON); err != nil {
		logging.Warn(logger, "failed to load team social accounts", "error", err)
	}
	return svc
}

func (s *Service) load(data []byte) error {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}

	accounts := make([]TeamSocialAccount, 0, len(records))
	for _, record := range records {
		account := normalizeAccount(record)
		if account.TeamID == "" {
			continue
		}
		accounts = append(accounts, account)
	}
	s.store.Replace(accounts)
	logging.Info(s.logger, "team social accounts loaded", logging.FieldCount, len(accounts))
	return nil
}

// normalizeAccount maps one raw directory record, tolerating the historical
// snake_case and camelCase key variants for the same logical field.
func normalizeAccount(record map[string]any) TeamSocialAccount {
	return TeamSocialAccount{
		TeamID:     strings.ToUpper(firstString(record, "team_id", "teamId")),
		TeamName:   firstString(record, "team_name", "teamName"),
		Platform:   "twitter",
		Handle:     firstString(record, "handle"),
		ProfileURL: firstString(record, "profile_url", "profileUrl"),
	}
}

// Accounts returns every known team account.
func (s *Service) Accounts() []TeamSocialAccount {
	return s.store.List()
}

// AccountByAbbreviation looks up one team account.
func (s *Service) AccountByAbbreviation(abbrev string) (TeamSocialAccount, bool) {
	if abbrev == "" {
		return TeamSocialAccount{}, false
	}
	return s.store.Get(abbrev)
}

// AccountsByAbbreviations returns the accounts for the given teams, skipping
// unknown abbreviations.
func (s *Service) AccountsByAbbreviations(abbrevs []string) []TeamSocialAccount {
	accounts := make([]TeamSocialAccount, 0, len(abbrevs))
	for _, abbrev := range abbrevs {
		if account, ok := s.store.Get(abbrev); ok {
			accounts = append(accounts, account)
		}
	}
	return accounts
}

// GameWindow computes the social capture window around a game's start time.
// Returns ok=false when the id or start time is missing/unparseable.
func (s *Service) GameWindow(gameID string, gameStartTime time.Time, homeTeam, awayTeam string) (GameSocialWindow, bool) {
	if gameID == "" || gameStartTime.IsZero() {
		return GameSocialWindow{}, false
	}

	return GameSocialWindow{
		GameID:        gameID,
		GameStartTime: gameStartTime,
		WindowStart:   gameStartTime.Add(-preGameWindowHours * time.Hour),
		WindowEnd:     gameStartTime.Add(postGameWindowHours * time.Hour),
		Teams:         s.AccountsByAbbreviations([]string{homeTeam, awayTeam}),
	}, true
}

// PostWithinWindow reports whether a post timestamp falls inside the window,
// inclusive at both ends.
func PostWithinWindow(postTime time.Time, window GameSocialWindow) bool {
	if postTime.IsZero() {
		return false
	}
	return !postTime.Before(window.WindowStart) && !postTime.After(window.WindowEnd)
}

// TwitterProfileURL builds a profile URL for a handle, tolerating a leading @.
func TwitterProfileURL(handle string) string {
	return "https://twitter.com/" + strings.TrimPrefix(handle, "@")
}
