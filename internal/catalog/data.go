package catalog

import "github.com/jkivisto/maturemark/internal/models"

var pillars = []models.Pillar{
	{
		Key:         models.PillarCode,
		Name:        "Code",
		Description: "Source code management, version control, and branching strategies",
		Tools:       []string{"Bitbucket", "Git"},
		Questions: []models.Question{
			{
				ID:          "code-001",
				PillarKey:   models.PillarCode,
				Question:    "Is source code stored in Bitbucket with proper version control?",
				Description: "Verify that all source code is properly versioned and stored in Bitbucket repositories with appropriate access controls.",
				Tools:       []string{"Bitbucket"},
			},
			{
				ID:          "code-002",
				PillarKey:   models.PillarCode,
				Question:    "Are branching strategies implemented (GitFlow, GitHub Flow, etc.)?",
				Description: "Check if the team follows established branching strategies for feature development, releases, and hotfixes.",
				Tools:       []string{"Bitbucket", "Git"},
			},
			{
				ID:          "code-003",
				PillarKey:   models.PillarCode,
				Question:    "Are pull requests mandatory for code integration?",
				Description: "Ensure that all code changes go through pull request review process before merging to main branches.",
				Tools:       []string{"Bitbucket"},
			},
			{
				ID:          "code-004",
				PillarKey:   models.PillarCode,
				Question:    "Are code review policies enforced with minimum reviewer requirements?",
				Description: "Verify that code review policies require minimum number of reviewers and approval before merge.",
				Tools:       []string{"Bitbucket"},
			},
			{
				ID:          "code-005",
				PillarKey:   models.PillarCode,
				Question:    "Is automated merge conflict detection and resolution in place?",
				Description: "Check if the system can detect and handle merge conflicts automatically where possible.",
				Tools:       []string{"Bitbucket", "Git"},
			},
			{
				ID:          "code-006",
				PillarKey:   models.PillarCode,
				Question:    "Are commit messages following standardized conventions?",
				Description: "Verify that commit messages follow a consistent format and include relevant information for tracking.",
				Tools:       []string{"Git"},
			},
		},
	},
	{
		Key:         models.PillarBuild,
		Name:        "Build",
		Description: "Automated build processes, compilation, and artifact generation",
		Tools:       []string{"CloudBees Jenkins", "Artifactory"},
		Questions: []models.Question{
			{
				ID:          "build-001",
				PillarKey:   models.PillarBuild,
				Question:    "Is automated build triggered on code commits?",
				Description: "Verify that builds are automatically initiated when code is pushed to the repository.",
				Tools:       []string{"CloudBees Jenkins", "Bitbucket"},
			},
			{
				ID:          "build-002",
				PillarKey:   models.PillarBuild,
				Question:    "Are build artifacts stored in Artifactory?",
				Description: "Check if build artifacts are properly stored and versioned in Artifactory for distribution.",
				Tools:       []string{"Artifactory"},
			},
			{
				ID:          "build-003",
				PillarKey:   models.PillarBuild,
				Question:    "Is build process consistent across all environments (dev, preprod, prod)?",
				Description: "Ensure that the same build process is used across development, pre-production, and production environments.",
				Tools:       []string{"CloudBees Jenkins"},
			},
			{
				ID:          "build-004",
				PillarKey:   models.PillarBuild,
				Question:    "Are build failures immediately notified to development teams?",
				Description: "Verify that build failure notifications are sent promptly to relevant team members.",
				Tools:       []string{"CloudBees Jenkins"},
			},
			{
				ID:          "build-005",
				PillarKey:   models.PillarBuild,
				Question:    "Is build history and logs retained for troubleshooting?",
				Description: "Check if build history and detailed logs are maintained for debugging and audit purposes.",
				Tools:       []string{"CloudBees Jenkins"},
			},
			{
				ID:          "build-006",
				PillarKey:   models.PillarBuild,
				Question:    "Are parallel builds implemented to optimize build time?",
				Description: "Verify if builds can run in parallel to reduce overall build duration.",
				Tools:       []string{"CloudBees Jenkins"},
			},
		},
	},
	{
		Key:         models.PillarCodeQuality,
		Name:        "Code Quality",
		Description: "Static code analysis, quality metrics, and technical debt management",
		Tools:       []string{"SonarQube"},
		Questions: []models.Question{
			{
				ID:          "quality-001",
				PillarKey:   models.PillarCodeQuality,
				Question:    "Is SonarQube integrated into the build pipeline?",
				Description: "Verify that SonarQube analysis is part of the automated build process for continuous code quality monitoring.",
				Tools:       []string{"SonarQube", "CloudBees Jenkins"},
			},
			{
				ID:          "quality-002",
				PillarKey:   models.PillarCodeQuality,
				Question:    "Are quality gates configured to prevent poor quality code deployment?",
				Description: "Check if quality gates are set up to block deployments when code quality metrics fall below thresholds.",
				Tools:       []string{"SonarQube"},
			},
			{
				ID:          "quality-003",
				PillarKey:   models.PillarCodeQuality,
				Question:    "Are code coverage thresholds enforced (minimum 80%)?",
				Description: "Verify that code coverage requirements are enforced and maintained at acceptable levels.",
				Tools:       []string{"SonarQube"},
			},
			{
				ID:          "quality-004",
				PillarKey:   models.PillarCodeQuality,
				Question:    "Is technical debt tracked and managed regularly?",
				Description: "Check if technical debt is monitored, tracked, and regularly addressed by development teams.",
				Tools:       []string{"SonarQube"},
			},
			{
				ID:          "quality-005",
				PillarKey:   models.PillarCodeQuality,
				Question:    "Are code smells and bugs automatically identified and reported?",
				Description: "Verify that code smells, bugs, and vulnerabilities are automatically detected and reported.",
				Tools:       []string{"SonarQube"},
			},
			{
				ID:          "quality-006",
				PillarKey:   models.PillarCodeQuality,
				Question:    "Are coding standards and best practices enforced?",
				Description: "Check if coding standards are defined, documented, and automatically enforced through tooling.",
				Tools:       []string{"SonarQube"},
			},
		},
	},
	{
		Key:         models.PillarSecurity,
		Name:        "Security",
		Description: "Security scanning, vulnerability management, and compliance",
		Tools:       []string{"Fortify", "NexusIQ", "CyberArk"},
		Questions: []models.Question{
			{
				ID:          "security-001",
				PillarKey:   models.PillarSecurity,
				Question:    "Is Fortify SAST scanning integrated into the build pipeline?",
				Description: "Verify that Fortify Static Application Security Testing is part of the continuous integration process.",
				Tools:       []string{"Fortify", "CloudBees Jenkins"},
			},
			{
				ID:          "security-002",
				PillarKey:   models.PillarSecurity,
				Question:    "Is NexusIQ scanning dependencies for vulnerabilities?",
				Description: "Check if third-party dependencies are scanned for known security vulnerabilities using NexusIQ.",
				Tools:       []string{"NexusIQ"},
			},
			{
				ID:          "security-003",
				PillarKey:   models.PillarSecurity,
				Question:    "Are secrets managed through CyberArk instead of hardcoded values?",
				Description: "Verify that application secrets and credentials are managed through CyberArk, not hardcoded in source code.",
				Tools:       []string{"CyberArk"},
			},
			{
				ID:          "security-004",
				PillarKey:   models.PillarSecurity,
				Question:    "Are security vulnerabilities tracked and remediated promptly?",
				Description: "Check if security vulnerabilities are properly tracked, prioritized, and remediated within defined SLAs.",
				Tools:       []string{"Fortify", "NexusIQ"},
			},
			{
				ID:          "security-005",
				PillarKey:   models.PillarSecurity,
				Question:    "Is security scanning performed across all environments?",
				Description: "Verify that security scanning is performed consistently across development, pre-production, and production environments.",
				Tools:       []string{"Fortify", "NexusIQ"},
			},
			{
				ID:          "security-006",
				PillarKey:   models.PillarSecurity,
				Question:    "Are security policies enforced to block deployments with critical vulnerabilities?",
				Description: "Check if security gates prevent deployment of applications with critical security vulnerabilities.",
				Tools:       []string{"Fortify", "NexusIQ"},
			},
		},
	},
	{
		Key:         models.PillarTesting,
		Name:        "Testing",
		Description: "Automated testing strategies, test coverage, and quality assurance",
		Tools:       []string{"CloudBees Jenkins", "JUnit", "Selenium"},
		Questions: []models.Question{
			{
				ID:          "testing-001",
				PillarKey:   models.PillarTesting,
				Question:    "Are unit tests automated and integrated into the build pipeline?",
				Description: "Verify that unit tests run automatically as part of the build process with appropriate coverage.",
				Tools:       []string{"CloudBees Jenkins", "JUnit"},
			},
			{
				ID:          "testing-002",
				PillarKey:   models.PillarTesting,
				Question:    "Are integration tests performed automatically between components?",
				Description: "Check if integration testing is automated to validate interactions between different system components.",
				Tools:       []string{"CloudBees Jenkins"},
			},
			{
				ID:          "testing-003",
				PillarKey:   models.PillarTesting,
				Question:    "Is automated UI testing implemented using tools like Selenium?",
				Description: "Verify that user interface testing is automated using appropriate testing frameworks.",
				Tools:       []string{"Selenium", "CloudBees Jenkins"},
			},
			{
				ID:          "testing-004",
				PillarKey:   models.PillarTesting,
				Question:    "Are performance tests automated for critical application paths?",
				Description: "Check if performance testing is automated for key user journeys and system bottlenecks.",
				Tools:       []string{"CloudBees Jenkins"},
			},
			{
				ID:          "testing-005",
				PillarKey:   models.PillarTesting,
				Question:    "Is test data management automated and environment-specific?",
				Description: "Verify that test data is properly managed, anonymized, and appropriate for each testing environment.",
				Tools:       []string{"CloudBees Jenkins"},
			},
			{
				ID:          "testing-006",
				PillarKey:   models.PillarTesting,
				Question:    "Are test results reported and tracked for trend analysis?",
				Description: "Check if test results are properly reported, tracked, and analyzed for quality trends.",
				Tools:       []string{"CloudBees Jenkins"},
			},
		},
	},
	{
		Key:         models.PillarPackage,
		Name:        "Package",
		Description: "Package management, dependency management, and artifact versioning",
		Tools:       []string{"Artifactory", "Docker"},
		Questions: []models.Question{
			{
				ID:          "package-001",
				PillarKey:   models.PillarPackage,
				Question:    "Are application packages stored in Artifactory with proper versioning?",
				Description: "Verify that all application packages are stored in Artifactory with semantic versioning.",
				Tools:       []string{"Artifactory"},
			},
			{
				ID:          "package-002",
				PillarKey:   models.PillarPackage,
				Question:    "Is Docker containerization implemented for applications?",
				Description: "Check if applications are containerized using Docker for consistent deployment across environments.",
				Tools:       []string{"Docker", "Artifactory"},
			},
			{
				ID:          "package-003",
				PillarKey:   models.PillarPackage,
				Question:    "Are base images scanned for vulnerabilities before use?",
				Description: "Verify that Docker base images are scanned for security vulnerabilities before being used.",
				Tools:       []string{"Docker", "NexusIQ"},
			},
			{
				ID:          "package-004",
				PillarKey:   models.PillarPackage,
				Question:    "Is package promotion automated between environments?",
				Description: "Check if packages are automatically promoted from development through to production environments.",
				Tools:       []string{"Artifactory", "CloudBees Jenkins"},
			},
			{
				ID:          "package-005",
				PillarKey:   models.PillarPackage,
				Question:    "Are dependency updates managed and tested automatically?",
				Description: "Verify that dependency updates are managed systematically with automated testing.",
				Tools:       []string{"Artifactory", "NexusIQ"},
			},
			{
				ID:          "package-006",
				PillarKey:   models.PillarPackage,
				Question:    "Is package integrity verified through checksums and signatures?",
				Description: "Check if package integrity is maintained through cryptographic checksums and digital signatures.",
				Tools:       []string{"Artifactory"},
			},
		},
	},
	{
		Key:         models.PillarDeploy,
		Name:        "Deploy",
		Description: "Deployment automation, infrastructure as code, and release management",
		Tools:       []string{"Ansible", "CloudBees Jenkins"},
		Questions: []models.Question{
			{
				ID:          "deploy-001",
				PillarKey:   models.PillarDeploy,
				Question:    "Is deployment automated using Ansible across all environments?",
				Description: "Verify that deployments are fully automated using Ansible playbooks for all environments.",
				Tools:       []string{"Ansible", "CloudBees Jenkins"},
			},
			{
				ID:          "deploy-002",
				PillarKey:   models.PillarDeploy,
				Question:    "Are infrastructure changes managed as code (Infrastructure as Code)?",
				Description: "Check if infrastructure changes are version controlled and managed through code.",
				Tools:       []string{"Ansible", "Bitbucket"},
			},
			{
				ID:          "deploy-003",
				PillarKey:   models.PillarDeploy,
				Question:    "Is blue-green or canary deployment strategy implemented?",
				Description: "Verify that deployment strategies minimize downtime and risk through blue-green or canary approaches.",
				Tools:       []string{"Ansible"},
			},
			{
				ID:          "deploy-004",
				PillarKey:   models.PillarDeploy,
				Question:    "Are rollback procedures automated and tested?",
				Description: "Check if rollback procedures are automated and regularly tested for quick recovery.",
				Tools:       []string{"Ansible", "CloudBees Jenkins"},
			},
			{
				ID:          "deploy-005",
				PillarKey:   models.PillarDeploy,
				Question:    "Is deployment approval workflow implemented for production?",
				Description: "Verify that production deployments require appropriate approvals before execution.",
				Tools:       []string{"CloudBees Jenkins"},
			},
			{
				ID:          "deploy-006",
				PillarKey:   models.PillarDeploy,
				Question:    "Are deployment configurations environment-specific and externalized?",
				Description: "Check if deployment configurations are externalized and specific to each environment.",
				Tools:       []string{"Ansible", "CyberArk"},
			},
		},
	},
	{
		Key:         models.PillarMonitoring,
		Name:        "Monitoring",
		Description: "Application monitoring, logging, observability, and alerting",
		Tools:       []string{"Dynatrace", "Opensearch"},
		Questions: []models.Question{
			{
				ID:          "monitoring-001",
				PillarKey:   models.PillarMonitoring,
				Question:    "Is Dynatrace monitoring configured for application performance?",
				Description: "Verify that Dynatrace is configured to monitor application performance, user experience, and infrastructure.",
				Tools:       []string{"Dynatrace"},
			},
			{
				ID:          "monitoring-002",
				PillarKey:   models.PillarMonitoring,
				Question:    "Are application logs centralized in Opensearch?",
				Description: "Check if application logs are centrally collected, indexed, and searchable through Opensearch.",
				Tools:       []string{"Opensearch"},
			},
			{
				ID:          "monitoring-003",
				PillarKey:   models.PillarMonitoring,
				Question:    "Are alerting rules configured for critical system metrics?",
				Description: "Verify that appropriate alerts are configured for critical system metrics and thresholds.",
				Tools:       []string{"Dynatrace"},
			},
			{
				ID:          "monitoring-004",
				PillarKey:   models.PillarMonitoring,
				Question:    "Is distributed tracing implemented for microservices?",
				Description: "Check if distributed tracing is implemented to track requests across microservice architectures.",
				Tools:       []string{"Dynatrace"},
			},
			{
				ID:          "monitoring-005",
				PillarKey:   models.PillarMonitoring,
				Question:    "Are dashboards created for real-time system visibility?",
				Description: "Verify that real-time dashboards provide visibility into system health and performance.",
				Tools:       []string{"Dynatrace", "Opensearch"},
			},
			{
				ID:          "monitoring-006",
				PillarKey:   models.PillarMonitoring,
				Question:    "Is log retention policy implemented for compliance and troubleshooting?",
				Description: "Check if log retention policies are defined and implemented for compliance and operational needs.",
				Tools:       []string{"Opensearch"},
			},
		},
	},
}
