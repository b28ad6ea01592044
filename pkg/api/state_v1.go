// pkg/api/state_v1.go
package api

// StateV1 is the stable JSON schema for a generated initial state.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StateV1 struct {
	N      int     `json:"n"`
	L      int     `json:"L"`
	VMax   int     `json:"vmax"`
	PDec   float64 `json:"p_dec"`
	PStart float64 `json:"p_start"`
	Steps  int     `json:"steps"`
	Seed   *int64  `json:"seed"` // null when unseeded
	Pos    string  `json:"pos"`  // "even" | "random"
	Vel    string  `json:"vel"`  // "zero" | "random"
	Cars   []CarV1 `json:"cars"`
}

// CarV1 is one car; array order is car index.
type CarV1 struct {
	Lane     int `json:"lane"`
	Position int `json:"position"`
	Velocity int `json:"velocity"`
}
