package models

// LeaderCategory groups leaders into the three sections the site renders.
type LeaderCategory string

const (
	CategoryStudent   LeaderCategory = "student"
	CategoryExecutive LeaderCategory = "executive"
	CategoryFaculty   LeaderCategory = "faculty"
)

// ProjectStatus is the lifecycle state of a club project.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "Ongoing"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectPlanned   ProjectStatus = "Planned"
)

// PartnerType classifies partner organisations.
type PartnerType string

const (
	PartnerSponsor      PartnerType = "sponsor"
	PartnerCollaborator PartnerType = "collaborator"
	PartnerAcademic     PartnerType = "academic"
	PartnerOther        PartnerType = "other"
)
