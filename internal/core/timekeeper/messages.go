package timekeeper

import "fmt"

// Msg is a user action or ticker event delivered to Update.
type Msg interface {
	timekeeperMsg()
}

type (
	SelectPresetMsg struct{ Minutes int }
	StartMsg        struct{}
	StopMsg         struct{}
	ToggleMsg       struct{}
	ResetMsg        struct{}
	TickMsg         struct{}
	BeginEditMsg    struct{}
	DraftMsg        struct{ Text string }
	CommitEditMsg   struct{ Text string }
	CancelEditMsg   struct{}
)

func (SelectPresetMsg) timekeeperMsg() {}
func (StartMsg) timekeeperMsg()        {}
func (StopMsg) timekeeperMsg()         {}
func (ToggleMsg) timekeeperMsg()       {}
func (ResetMsg) timekeeperMsg()        {}
func (TickMsg) timekeeperMsg()         {}
func (BeginEditMsg) timekeeperMsg()    {}
func (DraftMsg) timekeeperMsg()        {}
func (CommitEditMsg) timekeeperMsg()   {}
func (CancelEditMsg) timekeeperMsg()   {}

// Update applies msg and returns the resulting snapshot. A rejected edit
// reports ErrInvalidTime.
func (keeper *TimeKeeper) Update(msg Msg) (Snapshot, error) {
	var err error
	switch msg := msg.(type) {
	case SelectPresetMsg:
		keeper.SelectPreset(msg.Minutes)
	case StartMsg:
		keeper.Start()
	case StopMsg:
		keeper.Stop()
	case ToggleMsg:
		keeper.Toggle()
	case ResetMsg:
		keeper.Reset()
	case TickMsg:
		keeper.Tick()
	case BeginEditMsg:
		keeper.BeginEdit()
	case DraftMsg:
		keeper.SetDraft(msg.Text)
	case CommitEditMsg:
		err = keeper.CommitEdit(msg.Text)
	case CancelEditMsg:
		keeper.CancelEdit()
	default:
		err = fmt.Errorf("unknown timekeeper message %T", msg)
	}
	return keeper.Snapshot(), err
}
