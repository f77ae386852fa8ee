package resume

import "fmt"

// ParserPrompt instructs the model to emit the nested Parsed schema. Used
// as the system prompt for the chat route and as the assistant instructions
// for the document-grounded route.
const ParserPrompt = `You are an expert CV/Resume parser. Extract ALL information from this CV document.

IMPORTANT:
- Extract EVERY job position from work/professional experience section
- Extract EVERY education entry (degrees, universities)
- Do NOT skip any entries

Return ONLY a valid JSON object with this EXACT structure:
{
  "personalInfo": {
    "firstName": "string",
    "lastName": "string",
    "email": "string",
    "phone": "string",
    "mobile": "string",
    "linkedIn": "string",
    "address": { "street": "string", "city": "string", "state": "string", "postalCode": "string", "country": "string" }
  },
  "workHistory": [
    {
      "company": "company name",
      "title": "job title",
      "startDate": "YYYY-MM",
      "endDate": "YYYY-MM or Present",
      "description": "key responsibilities"
    }
  ],
  "education": [
    {
      "institution": "university name",
      "degree": "degree name",
      "major": "field of study",
      "graduationYear": "YYYY"
    }
  ],
  "skills": ["skill1", "skill2"],
  "certifications": ["cert1", "cert2"],
  "summary": "2-3 sentence professional summary",
  "totalYearsExperience": 0
}

RULES:
1. Extract ALL jobs - this CV should have multiple positions
2. Extract ALL education - look for degrees, universities, graduation years
3. Convert month names to numbers (June=06, August=08)
4. Use "" for missing strings, [] for missing arrays
5. Return ONLY JSON - no markdown, no explanation`

// AssistantUserTurn is the single user message posted to the
// document-grounded assistant thread.
const AssistantUserTurn = "Parse this resume and extract all information. Return ONLY valid JSON."

// LegacySystemPrompt is the persona for the legacy flat-schema route.
const LegacySystemPrompt = "you are a resume parser assistant and only gives result as output without specifying anything."

const legacyInstruction = `you will be provided with resume text and your task is to parse resume details very precisely and generate output in json format like this.
{
    "PersonalInformation":{"Name":"","Email":"","Phone":"","Address":"","Location":""},
    "Skills":[]
    }

resume_text:
`

// LegacyPrompt renders the legacy flat-schema instruction with the resume
// text appended.
func LegacyPrompt(text string) string {
	return legacyInstruction + text
}

// ChatUserPrompt renders the user turn for the nested-schema chat route.
func ChatUserPrompt(text string) string {
	return fmt.Sprintf("Parse this resume:\n\n%s", text)
}
