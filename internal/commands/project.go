package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulov/nudge/internal/db"
	"github.com/okulov/nudge/internal/models"
)

var newprojectCmd = &cobra.Command{
	Use:     "newproject <name>",
	Aliases: []string{"np"},
	Short:   "Create a new root project",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		project, err := db.CreateProject(cfg.UserID, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added project %q #%d\n", project.Name, project.ID)
	}),
}

var newsubCmd = &cobra.Command{
	Use:     "newsub <project> <name>",
	Aliases: []string{"new", "newsubproject"},
	Short:   "Create a subproject under a root project",
	Args:    cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		subproject, err := db.CreateSubproject(cfg.UserID, args[0], args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added subproject %q #%d\n", subproject.Name, subproject.ID)
	}),
}

var projectsCmd = &cobra.Command{
	Use:     "projects [project]",
	Aliases: []string{"ls"},
	Short:   "List root projects, or the subprojects of one",
	Args:    cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		var (
			projects []models.Project
			err      error
		)
		if len(args) == 1 {
			projects, err = db.GetSubprojects(cfg.UserID, args[0])
		} else {
			projects, err = db.GetRootProjects(cfg.UserID)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(projects) == 0 {
			fmt.Println("No projects found. Use 'nudge newproject <name>' to create one.")
			return
		}
		for _, project := range projects {
			fmt.Printf("#%d %s\n", project.ID, project.Name)
		}
	}),
}
