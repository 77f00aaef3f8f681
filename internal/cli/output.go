package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Match:
		o.printMatch(v)
	case []Match:
		for i, m := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printMatch(m)
		}
	case []UpcomingMatch:
		for i, m := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printUpcomingMatch(m)
		}
	case Prediction:
		o.printPrediction(v)
	case []HistoryEntry:
		o.printHistory(v)
	case []Standing:
		o.printStandings(v)
	case MatchPredictions:
		o.printMatchPredictions(v)
	case []AdminUser:
		o.printAdminUsers(v)
	case ResetPasswordResult:
		fmt.Printf("New password: %s\n", v.NewPassword)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Match response type
type Match struct {
	ID        string    `json:"id"`
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	IsHome    bool      `json:"is_home"`
	KickoffAt time.Time `json:"kickoff_at"`
	Deadline  time.Time `json:"deadline"`
	HomeGoals *int      `json:"home_goals"`
	AwayGoals *int      `json:"away_goals"`
	Finished  bool      `json:"is_finished"`
}

// UpcomingMatch is a match with the caller's prediction attached
type UpcomingMatch struct {
	Match
	UserPrediction *Prediction `json:"user_prediction"`
	CanPredict     bool        `json:"can_predict"`
}

// Prediction response type
type Prediction struct {
	ID        string `json:"id"`
	MatchID   string `json:"match_id"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
	Points    *int   `json:"points"`
}

// HistoryEntry response type
type HistoryEntry struct {
	Prediction
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	IsHome    bool      `json:"is_home"`
	KickoffAt time.Time `json:"kickoff_at"`
	RealHome  *int      `json:"real_home"`
	RealAway  *int      `json:"real_away"`
	Finished  bool      `json:"is_finished"`
}

// Standing response type
type Standing struct {
	UserID           string `json:"user_id"`
	DisplayName      string `json:"display_name"`
	TotalPoints      int    `json:"total_points"`
	ExactPredictions int    `json:"exact_predictions"`
	TotalPredictions int    `json:"total_predictions"`
}

// MatchPrediction is a prediction with its owner
type MatchPrediction struct {
	Prediction
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// MissingUser is a user without a prediction for a match
type MissingUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// MatchPredictions response type
type MatchPredictions struct {
	Predictions []MatchPrediction `json:"predictions"`
	Missing     []MissingUser     `json:"missing"`
}

// AdminUser response type
type AdminUser struct {
	User
	TotalPoints      int `json:"total_points"`
	ExactPredictions int `json:"exact_predictions"`
}

// ResetPasswordResult response type
type ResetPasswordResult struct {
	NewPassword string `json:"new_password"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	adminStr := ""
	if u.IsAdmin {
		adminStr = " [admin]"
	}
	fmt.Printf("User: %s (%s)%s\n", u.DisplayName, u.Username, adminStr)
	fmt.Printf("ID: %s\n", u.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func fixtureName(m Match) string {
	if m.IsHome {
		return fmt.Sprintf("%s vs %s", m.Team, m.Opponent)
	}
	return fmt.Sprintf("%s vs %s", m.Opponent, m.Team)
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s (%s)\n", fixtureName(m), m.ID)
	fmt.Printf("Kickoff: %s\n", m.KickoffAt.Local().Format("Mon 02 Jan 2006 15:04"))
	fmt.Printf("Deadline: %s\n", m.Deadline.Local().Format("Mon 02 Jan 2006 15:04"))
	if m.Finished && m.HomeGoals != nil && m.AwayGoals != nil {
		fmt.Printf("Result: %d-%d\n", *m.HomeGoals, *m.AwayGoals)
	}
}

func (o *Output) printUpcomingMatch(m UpcomingMatch) {
	o.printMatch(m.Match)
	if m.UserPrediction != nil {
		fmt.Printf("Your prediction: %d-%d\n", m.UserPrediction.HomeGoals, m.UserPrediction.AwayGoals)
	}
	if m.CanPredict {
		fmt.Println("Predictions: open")
	} else {
		fmt.Println("Predictions: closed")
	}
}

func (o *Output) printPrediction(p Prediction) {
	fmt.Printf("Prediction: %d-%d (match %s)\n", p.HomeGoals, p.AwayGoals, p.MatchID)
	if p.Points != nil {
		fmt.Printf("Points: %d\n", *p.Points)
	}
}

func (o *Output) printHistory(entries []HistoryEntry) {
	for i, e := range entries {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", fixtureName(Match{Team: e.Team, Opponent: e.Opponent, IsHome: e.IsHome}), e.KickoffAt.Local().Format("Mon 02 Jan 2006 15:04"))
		fmt.Printf("  Predicted: %d-%d\n", e.HomeGoals, e.AwayGoals)
		if e.Finished && e.RealHome != nil && e.RealAway != nil {
			fmt.Printf("  Result: %d-%d\n", *e.RealHome, *e.RealAway)
		}
		if e.Points != nil {
			fmt.Printf("  Points: %d\n", *e.Points)
		}
	}
}

func (o *Output) printStandings(standings []Standing) {
	for i, s := range standings {
		fmt.Printf("%3d. %-24s %4d pts  (%d exact, %d scored)\n",
			i+1, s.DisplayName, s.TotalPoints, s.ExactPredictions, s.TotalPredictions)
	}
}

func (o *Output) printMatchPredictions(v MatchPredictions) {
	fmt.Printf("Predictions (%d):\n", len(v.Predictions))
	for _, p := range v.Predictions {
		pts := ""
		if p.Points != nil {
			pts = fmt.Sprintf("  %d pts", *p.Points)
		}
		fmt.Printf("  %-24s %d-%d%s\n", p.DisplayName, p.HomeGoals, p.AwayGoals, pts)
	}
	if len(v.Missing) > 0 {
		fmt.Printf("Missing (%d):\n", len(v.Missing))
		for _, u := range v.Missing {
			fmt.Printf("  %s\n", u.DisplayName)
		}
	}
}

func (o *Output) printAdminUsers(users []AdminUser) {
	for _, u := range users {
		adminStr := ""
		if u.IsAdmin {
			adminStr = " [admin]"
		}
		fmt.Printf("%-24s %-16s %4d pts  (%d exact)%s\n",
			u.DisplayName, u.Username, u.TotalPoints, u.ExactPredictions, adminStr)
	}
}
