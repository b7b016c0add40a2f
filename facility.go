package main

// remoteCommand is the pydm invocation started on the resolved server.
// The navigation, status and menu bars are suppressed so the display
// comes up as a bare plot window.
const remoteCommand = "pydm --hide-nav-bar --hide-status-bar --hide-menu-bar /home/fphysics/zack/workspace/rtbsa2/rtbsaGUI.py"

type facility struct {
	selector string
	user     string
	host     string
}

func (f facility) identity() string {
	return f.user + "@" + f.host
}

var builtinFacilities = []facility{
	{selector: "lcls", user: "physics", host: "lcls-srv02"},
	{selector: "facet", user: "fphysics", host: "facet-srv02"},
}

func lookupFacility(table []facility, selector string) (facility, bool) {
	for _, f := range table {
		if f.selector == selector {
			return f, true
		}
	}

	return facility{}, false
}
