package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
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
	case CurrentUser:
		o.printCurrentUser(v)
	case HomeResult:
		o.printHomeResult(v)
	case SearchResult:
		o.printSearchResult(v)
	case PlayerDetail:
		o.printPlayerDetail(v)
	case PlayerProfile:
		o.printPlayerProfile(v)
	case TeamProfile:
		o.printTeamProfile(v)
	case TeamDetail:
		o.printTeamDetail(v)
	case MatchDetail:
		o.printMatchDetail(v)
	case FavoritesResult:
		o.printFavoritesResult(v)
	case FavoriteStatus:
		o.printFavoriteStatus(v)
	case RateResult:
		o.printRateResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Rating is a community rating that may be absent. The API encodes
// the absent case as the string "N/A".
type Rating struct {
	Value float64
	Valid bool
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return json.Marshal("N/A")
	}
	return json.Marshal(r.Value)
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `"N/A"` || s == "null" {
		r.Valid = false
		r.Value = 0
		return nil
	}
	if err := json.Unmarshal(data, &r.Value); err != nil {
		return err
	}
	r.Valid = true
	return nil
}

func (r Rating) String() string {
	if !r.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(r.Value, 'f', 1, 64)
}

// User response type (matches API)
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// CurrentUser response type
type CurrentUser struct {
	LoggedIn bool  `json:"logged_in"`
	User     *User `json:"user,omitempty"`
}

// PlayerProfile response type
type PlayerProfile struct {
	ID              string  `json:"player_id"`
	Name            string  `json:"player"`
	TeamID          string  `json:"team_id"`
	GamesPlayed     int     `json:"games_played"`
	PointsPerGame   float64 `json:"points_per_game"`
	AssistsPerGame  float64 `json:"assists_per_game"`
	ReboundsPerGame float64 `json:"total_rebounds_per_game"`
	StealsPerGame   float64 `json:"steals_per_game"`
}

// TeamProfile response type
type TeamProfile struct {
	ID              string  `json:"team_id"`
	Name            string  `json:"team_name"`
	PointsPerGame   float64 `json:"points_per_game"`
	AssistsPerGame  float64 `json:"assists_per_game"`
	ReboundsPerGame float64 `json:"total_rebounds_per_game"`
	StealsPerGame   float64 `json:"steals_per_game"`
}

// HomeResult response type
type HomeResult struct {
	TopPlayers []PlayerProfile `json:"top_players"`
	BestTeams  []TeamProfile   `json:"best_teams"`
}

// SearchResult response type
type SearchResult struct {
	Players []PlayerProfile `json:"players"`
	Teams   []TeamProfile   `json:"teams"`
}

// MatchRow response type
type MatchRow struct {
	GameID           string  `json:"game_id"`
	Game             string  `json:"game"`
	Round            int     `json:"round"`
	Points           int     `json:"points"`
	Assists          int     `json:"assists"`
	Rebounds         int     `json:"rebounds"`
	Steals           int     `json:"steals"`
	Minutes          string  `json:"minutes"`
	PlusMinus        int     `json:"plus_minus"`
	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// PlayerSeason response type
type PlayerSeason struct {
	PlayerProfile
	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// TeamLink response type
type TeamLink struct {
	TeamID string `json:"team_id"`
}

// PlayerDetail response type
type PlayerDetail struct {
	PlayerDetails PlayerSeason `json:"player_details"`
	TeamLink      TeamLink     `json:"team_link"`
	MatchHistory  []MatchRow   `json:"match_history"`
	UserRating    Rating       `json:"user_rating"`
}

// TeamSeason response type
type TeamSeason struct {
	TeamProfile
	FGPercentage float64 `json:"fg_percentage"`
}

// RosterEntry response type
type RosterEntry struct {
	Name             string  `json:"player"`
	PlayerID         string  `json:"player_id"`
	GamesPlayed      int     `json:"games_played"`
	PointsPerGame    float64 `json:"points_per_game"`
	AssistsPerGame   float64 `json:"assists_per_game"`
	ReboundsPerGame  float64 `json:"rebounds_per_game"`
	StealsPerGame    float64 `json:"steals_per_game"`
	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// GameRow response type
type GameRow struct {
	GameID   string `json:"game_id"`
	HomeTeam string `json:"team_id_a"`
	AwayTeam string `json:"team_id_b"`
	Round    int    `json:"round"`
}

// TeamDetail response type
type TeamDetail struct {
	TeamDetails TeamSeason    `json:"team_details"`
	Roster      []RosterEntry `json:"roster"`
	Schedule    []GameRow     `json:"schedule"`
	UserRating  Rating        `json:"user_rating"`
}

// BoxScoreRow response type
type BoxScoreRow struct {
	PlayerID         string  `json:"player_id"`
	TeamID           string  `json:"team_id"`
	Minutes          string  `json:"minutes,omitempty"`
	Points           int     `json:"points"`
	Rebounds         int     `json:"rebounds"`
	Assists          int     `json:"assists"`
	Steals           int     `json:"steals"`
	Turnovers        int     `json:"turnovers"`
	PlusMinus        int     `json:"plus_minus"`
	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// MatchDetail response type
type MatchDetail struct {
	GameInfo         GameRow       `json:"game_info"`
	HomeTeamBoxScore []BoxScoreRow `json:"home_team_boxscore"`
	AwayTeamBoxScore []BoxScoreRow `json:"away_team_boxscore"`
}

// FavoritePlayer response type
type FavoritePlayer struct {
	PlayerProfile
	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// FavoriteTeam response type
type FavoriteTeam struct {
	TeamProfile
	FGPercentage float64 `json:"fg_percentage"`
}

// FavoritesResult response type
type FavoritesResult struct {
	Players []FavoritePlayer `json:"players"`
	Teams   []FavoriteTeam   `json:"teams"`
}

// FavoriteStatus response type
type FavoriteStatus struct {
	IsFavorite bool `json:"is_favorite"`
}

// RateResult response type
type RateResult struct {
	UserRating Rating `json:"user_rating"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	adminStr := "no"
	if u.IsAdmin {
		adminStr = "yes"
	}
	fmt.Printf("User: %s (#%d)\n", u.Username, u.ID)
	fmt.Printf("Admin: %s\n", adminStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printCurrentUser(c CurrentUser) {
	if !c.LoggedIn || c.User == nil {
		fmt.Println("Not logged in")
		return
	}
	o.printUser(*c.User)
}

func (o *Output) printHomeResult(h HomeResult) {
	fmt.Printf("Top Players (%d):\n", len(h.TopPlayers))
	for i, p := range h.TopPlayers {
		fmt.Printf("  %d. %s (%s) - %.1f ppg\n", i+1, p.Name, p.ID, p.PointsPerGame)
	}
	fmt.Printf("Best Teams (%d):\n", len(h.BestTeams))
	for i, t := range h.BestTeams {
		fmt.Printf("  %d. %s (%s) - %.1f ppg\n", i+1, t.Name, t.ID, t.PointsPerGame)
	}
}

func (o *Output) printSearchResult(s SearchResult) {
	fmt.Printf("Players (%d):\n", len(s.Players))
	for _, p := range s.Players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
	fmt.Printf("Teams (%d):\n", len(s.Teams))
	for _, t := range s.Teams {
		fmt.Printf("  - %s (%s)\n", t.Name, t.ID)
	}
}

func (o *Output) printPlayerProfile(p PlayerProfile) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Team: %s\n", p.TeamID)
	fmt.Printf("Games Played: %d\n", p.GamesPlayed)
	fmt.Printf("Per Game: %.1f pts / %.1f ast / %.1f reb / %.1f stl\n",
		p.PointsPerGame, p.AssistsPerGame, p.ReboundsPerGame, p.StealsPerGame)
}

func (o *Output) printTeamProfile(t TeamProfile) {
	fmt.Printf("Team: %s (%s)\n", t.Name, t.ID)
	fmt.Printf("Per Game: %.1f pts / %.1f ast / %.1f reb / %.1f stl\n",
		t.PointsPerGame, t.AssistsPerGame, t.ReboundsPerGame, t.StealsPerGame)
}

func (o *Output) printPlayerDetail(p PlayerDetail) {
	d := p.PlayerDetails
	fmt.Printf("Player: %s (%s)\n", d.Name, d.ID)
	fmt.Printf("Team: %s\n", p.TeamLink.TeamID)
	fmt.Printf("Games Played: %d\n", d.GamesPlayed)
	fmt.Printf("Per Game: %.1f pts / %.1f ast / %.1f reb / %.1f stl\n",
		d.PointsPerGame, d.AssistsPerGame, d.ReboundsPerGame, d.StealsPerGame)
	fmt.Printf("Season FG%%: %.1f\n", d.FGPercentage)
	fmt.Printf("Season Rating: %.2f\n", d.EfficiencyRating)
	fmt.Printf("User Rating: %s\n", p.UserRating)

	if len(p.MatchHistory) > 0 {
		fmt.Printf("\nMatch History (%d):\n", len(p.MatchHistory))
		for _, m := range p.MatchHistory {
			fmt.Printf("  R%d %s: %d pts, %d ast, %d reb, FG%% %.1f, rating %.2f\n",
				m.Round, m.Game, m.Points, m.Assists, m.Rebounds, m.FGPercentage, m.EfficiencyRating)
		}
	}
}

func (o *Output) printTeamDetail(t TeamDetail) {
	d := t.TeamDetails
	fmt.Printf("Team: %s (%s)\n", d.Name, d.ID)
	fmt.Printf("Per Game: %.1f pts / %.1f ast / %.1f reb / %.1f stl\n",
		d.PointsPerGame, d.AssistsPerGame, d.ReboundsPerGame, d.StealsPerGame)
	fmt.Printf("Season FG%%: %.1f\n", d.FGPercentage)
	fmt.Printf("User Rating: %s\n", t.UserRating)

	if len(t.Roster) > 0 {
		fmt.Printf("\nRoster (%d):\n", len(t.Roster))
		for _, r := range t.Roster {
			fmt.Printf("  - %s (%s): %.1f ppg, FG%% %.1f, rating %.2f\n",
				r.Name, r.PlayerID, r.PointsPerGame, r.FGPercentage, r.EfficiencyRating)
		}
	}

	if len(t.Schedule) > 0 {
		fmt.Printf("\nSchedule (%d):\n", len(t.Schedule))
		for _, g := range t.Schedule {
			fmt.Printf("  R%d: %s vs %s (%s)\n", g.Round, g.HomeTeam, g.AwayTeam, g.GameID)
		}
	}
}

func (o *Output) printMatchDetail(m MatchDetail) {
	g := m.GameInfo
	fmt.Printf("Match: %s\n", g.GameID)
	fmt.Printf("Round: %d\n", g.Round)
	fmt.Printf("%s vs %s\n", g.HomeTeam, g.AwayTeam)

	printRows := func(label string, rows []BoxScoreRow) {
		fmt.Printf("\n%s (%d):\n", label, len(rows))
		for _, r := range rows {
			fmt.Printf("  %s: %d pts, %d reb, %d ast, FG%% %.1f, rating %.2f\n",
				r.PlayerID, r.Points, r.Rebounds, r.Assists, r.FGPercentage, r.EfficiencyRating)
		}
	}
	printRows("Home Box Score", m.HomeTeamBoxScore)
	printRows("Away Box Score", m.AwayTeamBoxScore)
}

func (o *Output) printFavoritesResult(f FavoritesResult) {
	fmt.Printf("Favorite Players (%d):\n", len(f.Players))
	for _, p := range f.Players {
		fmt.Printf("  - %s (%s): FG%% %.1f, rating %.2f\n",
			p.Name, p.ID, p.FGPercentage, p.EfficiencyRating)
	}
	fmt.Printf("Favorite Teams (%d):\n", len(f.Teams))
	for _, t := range f.Teams {
		fmt.Printf("  - %s (%s): FG%% %.1f\n", t.Name, t.ID, t.FGPercentage)
	}
}

func (o *Output) printFavoriteStatus(f FavoriteStatus) {
	if f.IsFavorite {
		fmt.Println("Favorite: yes")
	} else {
		fmt.Println("Favorite: no")
	}
}

func (o *Output) printRateResult(r RateResult) {
	fmt.Printf("User Rating: %s\n", r.UserRating)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
