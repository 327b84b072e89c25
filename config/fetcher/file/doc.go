// Package file provides a file-based DataFetcher implementation for the config package.
//
// Site files and theme descriptors are read once, when the Fetcher is built,
// and cached. Construction fails if the file cannot be read or the path is a
// directory; errors include the path. Use errors.Is(err,
// file.ErrPathIsDirectory) to detect the directory case.
//
//	fetcher, err := file.Read("theme/dist/dark.vscode.json")
//	if err != nil {
//	    return err
//	}
//	data, _ := fetcher.Fetch()
package file
