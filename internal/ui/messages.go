package ui

// parksLoadedMsg is sent once the background load finished, successfully or not
type parksLoadedMsg struct {
	err error
}

// pagerClosedMsg is sent when the external pager returns control
type pagerClosedMsg struct {
	err error
}
