package shell

import (
	"path/filepath"

	"github.com/shunichi-ikebuchi/file-manager/pkg/snapshot"
	"github.com/shunichi-ikebuchi/file-manager/pkg/workdir"
)

func (s *Shell) createFolder() error {
	s.con.Screen("CREATE FOLDER")

	name, err := s.con.PromptRequired("Enter folder name: ")
	if err != nil {
		return err
	}

	if _, err := s.repo.CreateDir(name); err != nil {
		return err
	}

	s.con.Success("Folder '%s' created!", name)
	s.done(CmdCreateFolder.Action(), name)
	return nil
}

func (s *Shell) deleteEntry() error {
	s.con.Screen("DELETE")

	name, err := s.con.PromptRequired("Enter the name of the file or folder to delete: ")
	if err != nil {
		return err
	}

	ok, err := s.con.Confirm("Are you sure you want to delete '" + name + "'? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		s.con.Println("Action cancelled.")
		return nil
	}

	if _, err := s.repo.Delete(name); err != nil {
		return err
	}

	s.con.Success("'%s' deleted!", name)
	s.done(CmdDelete.Action(), name)
	return nil
}

func (s *Shell) copyEntry() error {
	s.con.Screen("COPY")

	src, err := s.con.Prompt("Enter the source file/folder name: ")
	if err != nil {
		return err
	}
	dst, err := s.con.Prompt("Enter the new name (for the copy): ")
	if err != nil {
		return err
	}

	if _, err := s.repo.Copy(src, dst); err != nil {
		return err
	}

	s.con.Success("'%s' copied to '%s'!", src, dst)
	s.done(CmdCopy.Action(), src+" -> "+dst)
	return nil
}

func (s *Shell) listAll() error {
	s.con.Screen("DIRECTORY CONTENTS")

	listing, err := s.repo.List()
	if err != nil {
		return err
	}

	if len(listing.Files) == 0 {
		s.con.Println("No files found")
	} else {
		s.con.Println("FILES:")
		s.printFiles(listing.Files)
	}

	if len(listing.Dirs) == 0 {
		s.con.Println("\nNo folders found")
	} else {
		s.con.Println("\nFOLDERS:")
		s.printDirs(listing.Dirs)
	}
	return nil
}

func (s *Shell) listDirs() error {
	s.con.Screen("FOLDERS ONLY")

	listing, err := s.repo.List()
	if err != nil {
		return err
	}

	if len(listing.Dirs) == 0 {
		s.con.Println("No folders found")
		return nil
	}
	s.printDirs(listing.Dirs)
	return nil
}

func (s *Shell) listFiles() error {
	s.con.Screen("FILES ONLY")

	listing, err := s.repo.List()
	if err != nil {
		return err
	}

	if len(listing.Files) == 0 {
		s.con.Println("No files found")
		return nil
	}
	s.printFiles(listing.Files)
	return nil
}

func (s *Shell) printFiles(files []workdir.Entry) {
	for i, f := range files {
		s.con.Printf("%3d. 📄 %s (%d bytes)\n", i+1, f.Name, f.Size)
	}
}

func (s *Shell) printDirs(dirs []workdir.Entry) {
	for i, d := range dirs {
		s.con.Printf("%3d. 📁 %s\n", i+1, d.Name)
	}
}

func (s *Shell) changeDir() error {
	s.con.Screen("CHANGE WORKING DIRECTORY")
	s.con.Printf("Current directory: %s\n", s.resolver.GetWorkDir())
	s.con.Println("\nHints:")
	s.con.Println("  • Absolute path: C:/Users/User/Documents or /home/user/Documents")
	s.con.Println("  • Relative path: user/my/ or .. (parent folder)")
	s.con.Println("  • '.' is the current folder")
	s.con.Rule("-")

	input, err := s.con.PromptRequired("Enter new path: ")
	if err != nil {
		return err
	}

	target, err := s.resolver.ChangeDir(input)
	if err != nil {
		return err
	}

	s.con.Success("Working directory changed to:\n%s", target)
	s.done(CmdChangeDir.Action(), target)
	return nil
}

func (s *Shell) saveSnapshot() error {
	s.con.Screen("SAVE DIRECTORY CONTENTS")

	listing, err := s.repo.List()
	if err != nil {
		return err
	}

	summary, err := snapshot.Write(s.resolver.GetSnapshotPath(), snapshot.New(listing.FileNames(), listing.DirNames()))
	if err != nil {
		return err
	}

	s.con.Success("Contents saved to file: %s", filepath.Base(summary.Path))
	s.con.Printf("Files found: %d, folders: %d\n", summary.Files, summary.Dirs)
	s.done(CmdSnapshot.Action(), summary.Path)
	return nil
}
