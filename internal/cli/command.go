package cli

import "strings"

// Command enumerates the actions the front end understands.
type Command int

const (
	CmdUnknown Command = iota
	CmdGenerate
	CmdCheck
	CmdStore
	CmdRetrieve
	CmdReveal
	CmdHelp
	CmdExit
)

var commandNames = map[string]Command{
	"generate": CmdGenerate,
	"gen":      CmdGenerate,
	"check":    CmdCheck,
	"store":    CmdStore,
	"save":     CmdStore,
	"retrieve": CmdRetrieve,
	"get":      CmdRetrieve,
	"reveal":   CmdReveal,
	"help":     CmdHelp,
	"?":        CmdHelp,
	"exit":     CmdExit,
	"quit":     CmdExit,
}

// ParseCommand maps a command word to a Command. Matching ignores case;
// unrecognised words yield CmdUnknown.
func ParseCommand(word string) Command {
	if c, ok := commandNames[strings.ToLower(strings.TrimSpace(word))]; ok {
		return c
	}
	return CmdUnknown
}

func (c Command) String() string {
	switch c {
	case CmdGenerate:
		return "generate"
	case CmdCheck:
		return "check"
	case CmdStore:
		return "store"
	case CmdRetrieve:
		return "retrieve"
	case CmdReveal:
		return "reveal"
	case CmdHelp:
		return "help"
	case CmdExit:
		return "exit"
	default:
		return "unknown"
	}
}

const helpText = `Available commands:
  generate [length]     generate a random password (4-50 characters)
  check                 check the strength of a password
  store [site] [-seal]  save a username and password for a site
  retrieve [site]       show the stored username and password hash
  reveal [site]         decrypt a sealed copy with the master password
  help                  show this help
  exit | quit           leave the program`
