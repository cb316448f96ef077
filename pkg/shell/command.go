package shell

import "strconv"

// Command is a main menu entry.
type Command int

const (
	CmdInvalid Command = iota
	CmdCreateFolder
	CmdDelete
	CmdCopy
	CmdListAll
	CmdListDirs
	CmdListFiles
	CmdSystemInfo
	CmdAbout
	CmdQuiz
	CmdAccount
	CmdChangeDir
	CmdSnapshot
	CmdQuit
)

// Commands lists the menu entries in display order.
var Commands = []Command{
	CmdCreateFolder, CmdDelete, CmdCopy, CmdListAll, CmdListDirs, CmdListFiles,
	CmdSystemInfo, CmdAbout, CmdQuiz, CmdAccount, CmdChangeDir, CmdSnapshot, CmdQuit,
}

// ParseCommand maps a menu selection such as "4" to its command. Only the
// exact menu numbers match; "04" and "+4" do not.
func ParseCommand(input string) (Command, bool) {
	for _, cmd := range Commands {
		if input == strconv.Itoa(int(cmd)) {
			return cmd, true
		}
	}
	return CmdInvalid, false
}

// Label is the menu text of the command.
func (c Command) Label() string {
	switch c {
	case CmdCreateFolder:
		return "Create folder"
	case CmdDelete:
		return "Delete (file/folder)"
	case CmdCopy:
		return "Copy (file/folder)"
	case CmdListAll:
		return "View working directory contents"
	case CmdListDirs:
		return "View folders only"
	case CmdListFiles:
		return "View files only"
	case CmdSystemInfo:
		return "View operating system information"
	case CmdAbout:
		return "About the program"
	case CmdQuiz:
		return "Play the quiz"
	case CmdAccount:
		return "My bank account"
	case CmdChangeDir:
		return "Change working directory"
	case CmdSnapshot:
		return "Save directory contents to file"
	case CmdQuit:
		return "Exit"
	case CmdInvalid:
	}
	return "Invalid"
}

// Action is the short name used in logs and the action history.
func (c Command) Action() string {
	switch c {
	case CmdCreateFolder:
		return "create-folder"
	case CmdDelete:
		return "delete"
	case CmdCopy:
		return "copy"
	case CmdListAll:
		return "list-all"
	case CmdListDirs:
		return "list-dirs"
	case CmdListFiles:
		return "list-files"
	case CmdSystemInfo:
		return "system-info"
	case CmdAbout:
		return "about"
	case CmdQuiz:
		return "quiz"
	case CmdAccount:
		return "account"
	case CmdChangeDir:
		return "change-dir"
	case CmdSnapshot:
		return "snapshot"
	case CmdQuit:
		return "quit"
	case CmdInvalid:
	}
	return "invalid"
}

// accountAction is a bank account sub-menu entry.
type accountAction int

const (
	acctInvalid accountAction = iota
	acctDeposit
	acctPurchase
	acctHistory
	acctClearHistory
	acctBack
)

func parseAccountAction(input string) accountAction {
	for a := acctDeposit; a <= acctBack; a++ {
		if input == strconv.Itoa(int(a)) {
			return a
		}
	}
	return acctInvalid
}

func (a accountAction) label() string {
	switch a {
	case acctDeposit:
		return "Top up the account"
	case acctPurchase:
		return "Make a purchase"
	case acctHistory:
		return "Purchase history"
	case acctClearHistory:
		return "Clear history"
	case acctBack:
		return "Back to main menu"
	case acctInvalid:
	}
	return "Invalid"
}
