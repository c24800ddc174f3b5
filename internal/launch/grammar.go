package launch

// Parse validates the user-supplied tokens (the program name excluded) and
// returns the selected request. No arguments at all selects run.
func Parse(tokens []string) (Request, error) {
	if len(tokens) == 0 {
		return Request{Command: CommandRun}, nil
	}

	info, ok := Lookup(tokens[0])
	if !ok {
		return Request{}, InvalidCommand(tokens[0], SimilarCommands(tokens[0], maxSuggestions)...)
	}

	rest := tokens[1:]
	if info.Command == CommandGDB && len(rest) == 0 {
		return Request{}, MissingMode()
	}
	if len(rest) > info.Arity {
		return Request{}, UnexpectedArgument(rest[info.Arity])
	}

	req := Request{Command: info.Command}
	if info.Command == CommandGDB {
		mode, err := ParseMode(rest[0])
		if err != nil {
			return Request{}, err
		}
		req.Mode = mode
	}
	return req, nil
}

// ParseMode matches token against the gdb modes. Matching is exact.
func ParseMode(token string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == token {
			return m, nil
		}
	}
	return ModeNone, InvalidMode(token)
}
