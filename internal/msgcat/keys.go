package msgcat

// Key names one catalog entry by its dotted YAML path.
type Key string

const (
	SessionWelcome   Key = "session.welcome"
	SessionWhiteName Key = "session.white_name"
	SessionBlackName Key = "session.black_name"

	TurnPrompt           Key = "turn.prompt"
	TurnCaptureAvailable Key = "turn.capture_available"
	TurnBadFormat        Key = "turn.bad_format"
	TurnBadSquare        Key = "turn.bad_square"

	RejectNoPiece            Key = "reject.no_piece"
	RejectOpponentPiece      Key = "reject.opponent_piece"
	RejectIllegalDestination Key = "reject.illegal_destination"
	RejectCaptureRequired    Key = "reject.capture_required"
	RejectBadSquare          Key = "reject.bad_square"
	RejectRetry              Key = "reject.retry"

	FinishWinner     Key = "finish.winner"
	FinishDraw       Key = "finish.draw"
	FinishQuit       Key = "finish.quit"
	FinishQuitWinner Key = "finish.quit_winner"

	HistoryHeader Key = "history.header"
	HistoryEmpty  Key = "history.empty"
	HistoryLine   Key = "history.line"
	HistoryDraw   Key = "history.draw"
)

// required lists every key the game prints together with the template fields
// its caller supplies. A catalog missing one of these, or referring to any
// other field, is rejected when it is loaded.
var required = map[Key][]string{
	SessionWelcome:   nil,
	SessionWhiteName: nil,
	SessionBlackName: nil,

	TurnPrompt:           {"Name", "Color"},
	TurnCaptureAvailable: nil,
	TurnBadFormat:        nil,
	TurnBadSquare:        nil,

	RejectNoPiece:            nil,
	RejectOpponentPiece:      nil,
	RejectIllegalDestination: nil,
	RejectCaptureRequired:    nil,
	RejectBadSquare:          nil,
	RejectRetry:              nil,

	FinishWinner:     {"Name", "Color"},
	FinishDraw:       nil,
	FinishQuit:       {"Quitter"},
	FinishQuitWinner: {"Name", "Color"},

	HistoryHeader: nil,
	HistoryEmpty:  nil,
	HistoryLine:   {"Ended", "White", "Black", "Result", "Method"},
	HistoryDraw:   nil,
}
