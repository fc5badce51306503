package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// AppVersion is the App Engine application version written to the descriptor.
const AppVersion = "1"

// Gems and Includes are packaged by Warbler alongside the bundled jars.
var (
	Gems     = []string{"rave", "json-jruby", "rack", "builder"}
	Includes = []string{RobotFile, AppEngineWebFile}
)

// eventRows is the list of robot events documented in the class stub,
// grouped the way the comment block lays them out.
var eventRows = [][]string{
	{"WAVELET_BLIP_CREATED", "WAVELET_BLIP_REMOVED", "WAVELET_PARTICIPANTS_CHANGED"},
	{"WAVELET_TIMESTAMP_CHANGED", "WAVELET_TITLE_CHANGED", "WAVELET_VERSION_CHANGED"},
	{"BLIP_CONTRIBUTORS_CHANGED", "BLIP_DELETED", "BLIP_SUBMITTED", "BLIP_TIMESTAMP_CHANGED"},
	{"BLIP_VERSION_CHANGED", "DOCUMENT_CHANGED", "FORM_BUTTON_CLICKED"},
}

// SystemProperty is a JVM system property set in appengine-web.xml.
type SystemProperty struct {
	Name    string
	Value   string
	Comment string
}

var systemProperties = []SystemProperty{
	{Name: "jruby.management.enabled", Value: "false"},
	{Name: "os.arch", Value: ""},
	{Name: "jruby.compile.mode", Value: "JIT", Comment: "JIT|FORCE|OFF"},
	{Name: "jruby.compile.fastest", Value: "true"},
	{Name: "jruby.compile.frameless", Value: "true"},
	{Name: "jruby.compile.positionless", Value: "true"},
	{Name: "jruby.compile.threadless", Value: "false"},
	{Name: "jruby.compile.fastops", Value: "false"},
	{Name: "jruby.compile.fastcase", Value: "false"},
	{Name: "jruby.compile.chainsize", Value: "500"},
	{Name: "jruby.compile.lazyHandles", Value: "false"},
	{Name: "jruby.compile.peephole", Value: "true"},
}

// Context holds all values available to the project templates.
type Context struct {
	Name             string   // e.g., "my_robot"
	ModuleName       string   // e.g., "MyRobot"
	RobotClass       string   // e.g., "MyRobot::Robot"
	OptionsString    string   // e.g., `:name => "my_robot", :version => "1"`
	AppVersion       string   // App Engine application version
	Archives         []string // jar file names under lib/
	Gems             []string
	Includes         []string
	EventRows        [][]string
	SystemProperties []SystemProperty
}

// NewContext builds the template context for a parsed request.
func NewContext(req *Request, archives []string) Context {
	return Context{
		Name:             req.Name,
		ModuleName:       req.ModuleName,
		RobotClass:       req.ModuleName + "::Robot",
		OptionsString:    req.Options.RubyHash(),
		AppVersion:       AppVersion,
		Archives:         archives,
		Gems:             Gems,
		Includes:         Includes,
		EventRows:        eventRows,
		SystemProperties: systemProperties,
	}
}

var (
	parseOnce sync.Once
	parsed    *template.Template
	parseErr  error
)

func templates() (*template.Template, error) {
	parseOnce.Do(func() {
		funcs := sprig.TxtFuncMap()
		funcs["rubystr"] = rubyString
		parsed, parseErr = template.New("scaffold").
			Funcs(funcs).
			Option("missingkey=error").
			ParseFS(templateFS, "templates/*.tmpl")
		if parseErr != nil {
			parseErr = fmt.Errorf("parsing templates: %w", parseErr)
		}
	})
	return parsed, parseErr
}

func render(name string, ctx Context) (string, error) {
	tmpl, err := templates()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderRobot renders robot.rb, the class stub the user fills with handlers.
func RenderRobot(ctx Context) (string, error) {
	return render("robot.rb.tmpl", ctx)
}

// RenderRackup renders config.ru.
func RenderRackup(ctx Context) (string, error) {
	return render("config.ru.tmpl", ctx)
}

// RenderAppEngineWeb renders appengine-web.xml.
func RenderAppEngineWeb(ctx Context) (string, error) {
	return render("appengine-web.xml.tmpl", ctx)
}

// RenderWarble renders config/warble.rb.
func RenderWarble(ctx Context) (string, error) {
	return render("warble.rb.tmpl", ctx)
}
