package types

type NavbarData struct {
	IsAuthenticated bool
	IsAdmin         bool
	UserID          string
	UserEmail       string
	UserName        string
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Navbar NavbarData
	Notice string
	Error  string
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type HomePageData struct {
	BasePageData
	Urgent     []*RequestListing
	Recent     []*RequestListing
	Categories []*CategoryInfo
}

type BrowsePageData struct {
	BasePageData
	Requests   []*RequestListing
	Categories []*CategoryInfo
	Urgencies  []UrgencyLevel
	Filters    FilterSpec
}

type LoginPageData struct {
	BasePageData
	Email string
}
