package buildinfo

const Graffiti = " ___       _       _                 _   \n| _ \\___ _(_)_ _  | |_ ___ ___| |_  \n|  _/ _ \\ | | ' \\ |  _(_-</ -_)  _| \n|_| \\___/|_|_||_| \\__/__/\\___|\\__| \n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "pointsetd"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
