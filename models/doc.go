// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines wire, domain, and catalog types for the voting client.

# Wire Types

Records exchanged with the voting backend:

  - CandidateRecord: id_candidato, nombre, grupo, biografia, foto_url
  - TallyRecord: candidato, grupo, total_votos
  - VoteRequest: id_candidato
  - VoteResponse: message
  - ErrorResponse: error, message

id_candidato may arrive as a string or a number (FlexString), total_votos as
a number or a numeric string (VoteCount).

# Domain Types

  - Candidate: normalized candidate with decoded Group and absolute photo URL
  - Group: tagged variant (course id, Personero, Consejo, unknown)
  - VoteTally: read-only aggregated count
  - Stage: course → personero → consejo → complete

Group tags are decoded once with ParseGroup:

	g := models.ParseGroup("3")          // GroupCourse, Course "3"
	g = models.ParseGroup("Personero")   // GroupPersonero

# Static Tables

Courses lists the eleven courses shown on the first screen. AccentFor maps
the "01".."04" name prefix to a card accent, with AccentNeutral otherwise.
*/
package models
