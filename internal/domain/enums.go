package domain

// FileType represents the allowed resume upload types.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypeTXT:  "text/plain",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"docx": FileTypeDOCX,
	"txt":  FileTypeTXT,
}

// SectionName is one of the fixed resume section headings the tailor recognizes.
type SectionName string

const (
	SectionSummary        SectionName = "SUMMARY"
	SectionSkills         SectionName = "SKILLS"
	SectionExperience     SectionName = "EXPERIENCE"
	SectionEducation      SectionName = "EDUCATION"
	SectionCertifications SectionName = "CERTIFICATIONS"
	SectionProjects       SectionName = "PROJECTS"
)

// CanonicalSections is the closed, ordered set of recognized section headings.
// Output ordering always follows this list, never order of appearance in the text.
var CanonicalSections = []SectionName{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionCertifications,
	SectionProjects,
}
