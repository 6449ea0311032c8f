package data

import "github.com/udisondev/arenacore/internal/model"

// Lane geometry: a single straight lane between the two bases.
const (
	LaneStartX = 25.0
	LaneEndX   = 135.0
	LaneZ      = 35.0
)

// LanePoint returns the point at fraction t of the lane, 0 at the blue end.
func LanePoint(t float64) model.Vec3 {
	return model.Vec3{X: LaneStartX + (LaneEndX-LaneStartX)*t, Z: LaneZ}
}

// TurretSpec places one turret.
type TurretSpec struct {
	Name     string
	Team     model.Team
	Position model.Vec3
	// Requires names the turret that must fall before this one can be attacked.
	Requires string
}

// CampSpec places one jungle camp.
type CampSpec struct {
	Name     string
	Size     CampSize
	Position model.Vec3
}

// Layout - статическая раскладка арены.
type Layout struct {
	BlueBase    model.Vec3
	RedBase     model.Vec3
	BlueCrystal model.Vec3
	RedCrystal  model.Vec3
	Turrets     []TurretSpec
	Camps       []CampSpec
}

// Base returns the spawn point of team.
func (l *Layout) Base(team model.Team) model.Vec3 {
	if team == model.TeamRed {
		return l.RedBase
	}
	return l.BlueBase
}

// Crystal returns the crystal position of team.
func (l *Layout) Crystal(team model.Team) model.Vec3 {
	if team == model.TeamRed {
		return l.RedCrystal
	}
	return l.BlueCrystal
}

// Waypoints returns the lane path a minion of team walks, ending at the enemy crystal.
func (l *Layout) Waypoints(team model.Team) []model.Vec3 {
	if team == model.TeamRed {
		return []model.Vec3{LanePoint(1), LanePoint(0.5), LanePoint(0), l.BlueCrystal}
	}
	return []model.Vec3{LanePoint(0), LanePoint(0.5), LanePoint(1), l.RedCrystal}
}

func turretAt(name string, team model.Team, t float64, requires string) TurretSpec {
	p := LanePoint(t)
	p.Z += 2.5
	return TurretSpec{Name: name, Team: team, Position: p, Requires: requires}
}

// DefaultLayout is the standard arena.
var DefaultLayout = Layout{
	BlueBase:    model.Vec3{X: 12, Z: 35},
	RedBase:     model.Vec3{X: 148, Z: 35},
	BlueCrystal: model.Vec3{X: 15, Z: 35},
	RedCrystal:  model.Vec3{X: 145, Z: 35},
	Turrets: []TurretSpec{
		turretAt("blue_outer", model.TeamBlue, 0.30, ""),
		turretAt("blue_inner", model.TeamBlue, 0.15, "blue_outer"),
		turretAt("red_outer", model.TeamRed, 0.70, ""),
		turretAt("red_inner", model.TeamRed, 0.85, "red_outer"),
	},
	Camps: []CampSpec{
		{Name: "blue_small_a", Size: CampSmall, Position: model.Vec3{X: 25, Z: 10}},
		{Name: "blue_small_b", Size: CampSmall, Position: model.Vec3{X: 35, Z: 10}},
		{Name: "red_small_a", Size: CampSmall, Position: model.Vec3{X: 135, Z: 10}},
		{Name: "red_small_b", Size: CampSmall, Position: model.Vec3{X: 125, Z: 10}},
		{Name: "blue_medium", Size: CampMedium, Position: model.Vec3{X: 60, Z: 22}},
		{Name: "red_medium", Size: CampMedium, Position: model.Vec3{X: 100, Z: 22}},
		{Name: "large", Size: CampLarge, Position: model.Vec3{X: 80, Z: 12}},
	},
}
