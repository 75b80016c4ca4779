// Package tailorcss generates atomic utility CSS from shorthand class names.
//
// Class tokens such as pt30, w1200 or mb30em found in HTML class attributes
// are turned into rules like .pt30{padding-top:30px;}.
//
// # Markup
//
//	result, err := tailorcss.Generate(`<div class="container pt30"></div>`, tailorcss.Options{})
//	fmt.Println(result.Minified) // .pt30{padding-top:30px;}
//
// # Paths
//
// Directories are walked recursively and every .html file is read:
//
//	result, err := tailorcss.GeneratePaths([]string{"web/templates"}, tailorcss.Options{
//		OutputPath:   "web/static/tailored.css",
//		MinifyOutput: true,
//	})
//
// # Lazy generation
//
// A Session accumulates markup and paths across a build step and compiles
// them in one pass:
//
//	s := tailorcss.NewSession(tailorcss.CollectOptions{})
//	s.PushPath("web/templates")
//	s.PushHTML(renderedPage)
//	result, err := s.Generate(tailorcss.Options{})
//
// # CLI Tool
//
//	go install github.com/yacobolo/tailorcss/cmd/tailorcss@latest
package tailorcss
