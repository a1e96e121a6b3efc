package commands

// User-facing strings for the root command and its flags.
const (
	MsgRootShort = "make links between files"

	MsgRootLong = `lnk creates hard or symbolic links between files.

In the 1st form, create a link to TARGET with the name LINK_NAME.
In the 2nd form, create a link to TARGET in the current directory.
In the 3rd and 4th forms, create links to each TARGET in DIRECTORY.

  lnk [OPTION]... [-T] TARGET LINK_NAME   (1st form)
  lnk [OPTION]... TARGET                  (2nd form)
  lnk [OPTION]... TARGET... DIRECTORY     (3rd form)
  lnk [OPTION]... -t DIRECTORY TARGET...  (4th form)

Hard links are created by default, symbolic links with --symbolic.
By default, each destination (name of new link) should not already
exist. When creating hard links, each TARGET must exist. Symbolic
links can hold arbitrary text; if later resolved, a relative link is
interpreted in relation to its parent directory.`

	MsgFlagSymbolic    = "make symbolic links instead of hard links"
	MsgFlagForce       = "remove existing destination files"
	MsgFlagInteractive = "prompt whether to remove existing destination files"
	MsgFlagBackupNoArg = "like --backup but does not accept an argument"
	MsgFlagBackup      = "make a backup of each existing destination file (WHEN: simple, numbered, existing, none)"
	MsgFlagSuffix      = "override the usual backup suffix"
	MsgFlagTargetDir   = "specify the DIRECTORY in which to create the links"
	MsgFlagNoTargetDir = "treat LINK_NAME as a normal file always"
	MsgFlagVerbose     = "print name of each linked file"
	MsgFlagDryRun      = "show what would be linked without touching the filesystem"
	MsgFlagOutput      = "result format: text or yaml"
	MsgFlagDebug       = "increase diagnostic logging (--debug INFO, --debug --debug DEBUG)"
)
