package email

// DraftSystemPrompt sets the writer role for outreach email drafting.
const DraftSystemPrompt = "You are an expert email writer specializing in crafting professional outreach messages to academic experts for commentary requests."

// DraftPromptTemplate is the template for the outreach email prompt. The
// verbs take, in order: topic, name, institution, expertise, notable work,
// unique perspective, contact method, suggested questions JSON, contact
// info, then the expert name and topic again for the schema example.
const DraftPromptTemplate = `Using the information about this expert, create a personalized email template to request their commentary. Format your response as valid JSON.

Expert Information:
- Topic: %s
- Name: %s
- Institution: %s
- Expertise: %s
- Notable Work: %s
- Unique Perspective: %s
- Contact Method: %s
- Suggested Questions: %s
- Contact Info: %s

Craft a professional email with:
1. Clear subject line mentioning the news topic
2. Professional greeting with proper title and name
3. Concise introduction of purpose
4. Explanation of why their expertise is valuable
5. Clear 6-hour deadline
6. Their specialized questions
7. Requested format (brief, quotable paragraphs)
8. How their commentary will be used

Format your response in this JSON structure:
{
  "email_templates": [
    {
      "expert_name": "%s",
      "topic": "%s",
      "subject": "Expert Commentary Request: [Topic] - Response Needed in 6 Hours",
      "greeting": "Dear [Title and Name],",
      "email_body": "Complete email body text here...",
      "signature": "Best regards, [Your Name] [Your Title] [Your Institution] [Your Contact Information]"
    }
  ]
}

Ensure the email is concise, professional, customized to the expert, and ready to send after review.

YOU MUST RETURN YOUR RESPONSE IN VALID JSON FORMAT ONLY.`

// FormatSimpleSystemPrompt sets the editor role for the simple-format mode.
const FormatSimpleSystemPrompt = "You are an expert email editor specializing in restructuring rough email drafts into polished, professional messages."

// FormatSimplePromptTemplate is the template for the simple-format prompt.
// The verbs take: sender name, subject, body.
const FormatSimplePromptTemplate = `Restructure and polish the following rough email into a professional message. Do not invent new facts; keep the original meaning and intent. Format your response as valid JSON.

Sender Name: %s
Subject: %s
Body:
%s

Format your response in this JSON structure:
{
  "formatted_email": {
    "subject": "Polished subject line",
    "greeting": "Appropriate greeting,",
    "email_body": "Restructured and polished body text...",
    "signature": "Best regards, [Sender Name]",
    "key_points": ["Key point extracted from the body", "Another key point"]
  }
}

YOU MUST RETURN YOUR RESPONSE IN VALID JSON FORMAT ONLY.`
