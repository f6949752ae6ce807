// Package site holds the static content of the gTunnel landing page.
package site

// InstallCommand is the one-line installer shown in the header. It is a
// variable so release builds can pin it with
// -ldflags "-X gtunnel-site/internal/site.InstallCommand=...".
var InstallCommand = "curl -sSL https://raw.githubusercontent.com/B-AJ-Amar/gTunnel/main/scripts/install.sh | bash"

const (
	Name        = "gTunnel"
	Title       = "Fast & Secure HTTP Tunneling"
	Tagline     = "Fast, lightweight tunneling solution written in Go"
	RepoURL     = "https://github.com/B-AJ-Amar/gTunnel"
	DocsURL     = "https://b-aj-amar.github.io/gTunnel/docs/intro"
	QuickURL    = "https://b-aj-amar.github.io/gTunnel/docs/getting-started/quick-start"
	BlogURL     = "https://b-aj-amar.github.io/gTunnel/blog"
	HeroTitle   = "Fast & Secure"
	HeroAccent  = "Dev Tunnel"
	HeroSummary = "Expose your local development servers to the internet instantly. Built with Go for maximum performance and security."
)

// NavItem is an entry in the navigation bar.
type NavItem struct {
	Label string
	URL   string
	Right bool
}

// Nav lists the navigation bar items, left to right.
var Nav = []NavItem{
	{Label: "Quick Start", URL: QuickURL},
	{Label: "Docs", URL: DocsURL},
	{Label: "Blog", URL: BlogURL},
	{Label: "GitHub", URL: RepoURL, Right: true},
}

// Card is a titled blurb with an icon glyph.
type Card struct {
	Icon        string
	Title       string
	Description string
}

// Section is a heading with a subtitle.
type Section struct {
	Title    string
	Subtitle string
}

var FeaturesSection = Section{
	Title:    "Key Features",
	Subtitle: "gTunnel offers a range of features designed to enhance your development workflow and collaboration.",
}

var Features = []Card{
	{Icon: "◍", Title: "Public URLs", Description: "Share your local development server with anyone via a public URL."},
	{Icon: "⛨", Title: "Secure Tunnels", Description: "Ensure secure communication with encrypted tunnels."},
	{Icon: "⟨⟩", Title: "Open Source", Description: "Contribute to and customize gTunnel as an open-source project."},
	{Icon: "ϟ", Title: "Lightning Fast", Description: "Built with Go for exceptional performance and minimal resource usage."},
	{Icon: "▣", Title: "Docker Ready", Description: "Multi-architecture Docker images available for easy deployment."},
	{Icon: "⚒", Title: "Developer Friendly", Description: "Comprehensive CLI tools with detailed documentation and examples."},
}

var UseCasesSection = Section{
	Title:    "Perfect for Development",
	Subtitle: "Common scenarios where gTunnel makes development workflow seamless and efficient.",
}

var UseCases = []Card{
	{Icon: "☺", Title: "Team Collaboration", Description: "Share your local development server with teammates instantly"},
	{Icon: "↯", Title: "Webhook Testing", Description: "Test webhooks from external services during development"},
	{Icon: "◎", Title: "Client Demos", Description: "Showcase your work-in-progress to clients and stakeholders"},
	{Icon: "⚗", Title: "API Integration", Description: "Debug third-party API integrations in real-time"},
}

// CTA is the closing call to action.
var CTA = struct {
	Title    string
	Subtitle string
	Primary  NavItem
	Second   NavItem
}{
	Title:    "Ready to get started?",
	Subtitle: "Join developers worldwide who trust gTunnel for their tunneling needs",
	Primary:  NavItem{Label: "Start Tunneling Now", URL: QuickURL},
	Second:   NavItem{Label: "View on GitHub", URL: RepoURL},
}

// Step is one instruction of the quick start guide.
type Step struct {
	Title   string
	Command string
	Note    string
}

// QuickStart is the content of the Quick Start view. An empty Command on the
// first step stands for the configured install command.
var QuickStart = []Step{
	{Title: "Install gTunnel"},
	{Title: "Set the server token", Command: "gts config --set-token <token>", Note: "Run on a host with a public address."},
	{Title: "Start the server", Command: "gts start --port 7205"},
	{Title: "Point the client at it", Command: "gtc config --set-url wss://tunnel.example.com:7205 --set-token <token>"},
	{Title: "Expose a local port", Command: "gtc connect 3000", Note: "Requests to the public URL now reach localhost:3000."},
	{Title: "Check the connection", Command: "gtc status --verbose"},
}
