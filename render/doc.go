// Package render writes numeronym results as text, JSON Lines, or YAML.
//
// Create an encoder for one of the supported formats and feed it results:
//
//	enc := render.NewEncoder(os.Stdout, render.FormatJSON)
//	defer enc.Close()
//	enc.Encode(numeronym.Analyze("localization"))
//
// Schema returns the JSON Schema describing each JSON record.
package render
