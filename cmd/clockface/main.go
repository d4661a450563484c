// clockface draws an analog clock face.
//
// Build modes:
//   - Default build: GUI + CLI (requires graphics libraries)
//   - CLI-only build: go build -tags cli (no graphics dependencies)

package main

// version is the application version shown by the version command.
const version = "v1.0.0"

func main() {
	run()
}
