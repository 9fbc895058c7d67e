package replay

// Version is the replay file format version
const Version = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int  `json:"f"`            // Tick number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
	Q  bool `json:"q,omitempty"`  // Quit
	P  bool `json:"p,omitempty"`  // Pause
	LR bool `json:"lr,omitempty"` // LeftReleased
	RR bool `json:"rr,omitempty"` // RightReleased
}

// ReplayData contains all data needed to replay a game session.
// Level is empty for procedurally generated runs.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
