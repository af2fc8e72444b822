package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/okulov/nudge/internal/models"
)

// CreateProject creates a new root project for the user.
func CreateProject(userID uint, name string) (*models.Project, error) {
	project := models.Project{
		UserID: userID,
		Name:   name,
	}
	if err := DB.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateSubproject creates a subproject under the named root project.
func CreateSubproject(userID uint, parentName, name string) (*models.Project, error) {
	parent, err := GetProjectByName(userID, parentName)
	if err != nil {
		return nil, err
	}

	subproject := models.Project{
		ParentID: &parent.ID,
		UserID:   userID,
		Name:     name,
	}
	if err := DB.Create(&subproject).Error; err != nil {
		return nil, err
	}
	return &subproject, nil
}

// GetProjectByID retrieves a project by id.
func GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project #%d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &project, nil
}

// GetProjectByName retrieves the user's project with the given name.
func GetProjectByName(userID uint, name string) (*models.Project, error) {
	var project models.Project
	err := DB.Where("user_id = ? AND name = ?", userID, name).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return &project, nil
}

// GetRootProjects returns the user's projects that have no parent.
func GetRootProjects(userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := DB.Where("user_id = ? AND parent_id IS NULL", userID).
		Order("name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetSubprojects returns the direct subprojects of the named project.
func GetSubprojects(userID uint, projectName string) ([]models.Project, error) {
	parent, err := GetProjectByName(userID, projectName)
	if err != nil {
		return nil, err
	}
	return subprojectsOf(DB, parent.ID)
}

func subprojectsOf(tx *gorm.DB, projectID uint) ([]models.Project, error) {
	var projects []models.Project
	err := tx.Where("parent_id = ?", projectID).
		Order("name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// goalProjectIDs resolves the set of project ids a goal's worked time is
// summed over: the direct subprojects of the goal's project, or the project
// itself when it is a leaf.
func goalProjectIDs(tx *gorm.DB, goal *models.Goal) ([]uint, error) {
	subprojects, err := subprojectsOf(tx, goal.ProjectID)
	if err != nil {
		return nil, err
	}
	if len(subprojects) == 0 {
		return []uint{goal.ProjectID}, nil
	}
	ids := make([]uint, 0, len(subprojects))
	for _, sp := range subprojects {
		ids = append(ids, sp.ID)
	}
	return ids, nil
}
