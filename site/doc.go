/*
Package site assembles the descriptor consumed by the documentation site's
static build tool.

The descriptor starts from Default, which carries the site's metadata,
navigation bar, footer and theme choices. Assemble places the example
catalog under customFields.examples, stamps the copyright year, and
applies any overrides from the optional settings file.

Settings

A file named "siteconf.toml" at the site root may override parts of the
descriptor and tune the preview server. It is not an error if the file is
missing. For example:

	title = "Perspective"
	tagline = "Streaming analytics"
	blocks = "static/blocks"
	colormode = "light"
	expires = "1m"
	staticexpires = "1h"

	[headers]
	X-Frame-Options = "DENY"

Settings may include:

	Name           Type        Description
	-------------  ----------  -----------------------------------------
	title          string      Site title
	tagline        string      Site tagline
	url            string      Public URL of the site
	baseurl        string      Base path of the site
	favicon        string      Favicon URL
	blocks         string      Example root relative to the site root
	colormode      string      Initial color mode, "dark" or "light"
	expires        duration    Expiry of descriptor and HTML responses
	staticexpires  duration    Expiry of other responses
	headers        table       Extra HTTP response headers

Output

Encode writes the descriptor as JSON, YAML or TOML. Presets are written as
[name, options] pairs in JSON and YAML, which is what the build tool
expects; TOML has no heterogeneous arrays, so there they are tables.
*/
package site
