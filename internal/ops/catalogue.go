// Package ops carries the fixed b-CAP function-ID catalogue (§6, §4.7):
// every operation the server exposes is a (function ID, argument list) pair,
// generated here from the reference client's call table rather than hand-kept
// in sync with it.
package ops

// Op describes one catalogue entry: its function ID, name, and declared
// argument count (for documentation and table-driven tests, not enforced at
// call time — the wire format itself is the only real contract).
type Op struct {
	ID   int32
	Name string
	Args int
}

// Catalogue lists all 137 operations in function-ID order (1..137).
var Catalogue = []Op{
	{ID: 1, Name: "service_start", Args: 1},
	{ID: 2, Name: "service_stop", Args: 0},
	{ID: 3, Name: "controller_connect", Args: 4},
	{ID: 4, Name: "controller_disconnect", Args: 1},
	{ID: 5, Name: "controller_get_extension", Args: 3},
	{ID: 6, Name: "controller_get_file", Args: 3},
	{ID: 7, Name: "controller_get_robot", Args: 3},
	{ID: 8, Name: "controller_get_task", Args: 3},
	{ID: 9, Name: "controller_get_variable", Args: 3},
	{ID: 10, Name: "controller_get_command", Args: 3},
	{ID: 11, Name: "controller_get_extension_names", Args: 2},
	{ID: 12, Name: "controller_get_file_names", Args: 2},
	{ID: 13, Name: "controller_get_robot_names", Args: 2},
	{ID: 14, Name: "controller_get_task_names", Args: 2},
	{ID: 15, Name: "controller_get_variable_names", Args: 2},
	{ID: 16, Name: "controller_get_command_names", Args: 2},
	{ID: 17, Name: "controller_execute", Args: 3},
	{ID: 18, Name: "controller_get_message", Args: 1},
	{ID: 19, Name: "controller_get_attribute", Args: 1},
	{ID: 20, Name: "controller_get_help", Args: 1},
	{ID: 21, Name: "controller_get_name", Args: 1},
	{ID: 22, Name: "controller_get_tag", Args: 1},
	{ID: 23, Name: "controller_put_tag", Args: 2},
	{ID: 24, Name: "controller_get_id", Args: 1},
	{ID: 25, Name: "controller_put_id", Args: 2},
	{ID: 26, Name: "extension_get_variable", Args: 3},
	{ID: 27, Name: "extension_get_variable_names", Args: 2},
	{ID: 28, Name: "extension_execute", Args: 3},
	{ID: 29, Name: "extension_get_attribute", Args: 1},
	{ID: 30, Name: "extension_get_help", Args: 1},
	{ID: 31, Name: "extension_get_name", Args: 1},
	{ID: 32, Name: "extension_get_tag", Args: 1},
	{ID: 33, Name: "extension_put_tag", Args: 2},
	{ID: 34, Name: "extension_get_id", Args: 1},
	{ID: 35, Name: "extension_put_id", Args: 2},
	{ID: 36, Name: "extension_release", Args: 1},
	{ID: 37, Name: "file_get_file", Args: 3},
	{ID: 38, Name: "file_get_variable", Args: 3},
	{ID: 39, Name: "file_get_file_names", Args: 2},
	{ID: 40, Name: "file_get_variable_names", Args: 2},
	{ID: 41, Name: "file_execute", Args: 3},
	{ID: 42, Name: "file_copy", Args: 3},
	{ID: 43, Name: "file_delete", Args: 2},
	{ID: 44, Name: "file_move", Args: 3},
	{ID: 45, Name: "file_run", Args: 2},
	{ID: 46, Name: "file_get_date_created", Args: 1},
	{ID: 47, Name: "file_get_date_last_accessed", Args: 1},
	{ID: 48, Name: "file_get_date_last_modified", Args: 1},
	{ID: 49, Name: "file_get_path", Args: 1},
	{ID: 50, Name: "file_get_size", Args: 1},
	{ID: 51, Name: "file_get_type", Args: 1},
	{ID: 52, Name: "file_get_value", Args: 1},
	{ID: 53, Name: "file_put_value", Args: 2},
	{ID: 54, Name: "file_get_attribute", Args: 1},
	{ID: 55, Name: "file_get_help", Args: 1},
	{ID: 56, Name: "file_get_name", Args: 1},
	{ID: 57, Name: "file_get_tag", Args: 1},
	{ID: 58, Name: "file_put_tag", Args: 2},
	{ID: 59, Name: "file_get_id", Args: 1},
	{ID: 60, Name: "file_put_id", Args: 2},
	{ID: 61, Name: "file_release", Args: 1},
	{ID: 62, Name: "robot_get_variable", Args: 3},
	{ID: 63, Name: "robot_get_variable_names", Args: 2},
	{ID: 64, Name: "robot_execute", Args: 3},
	{ID: 65, Name: "robot_accelerate", Args: 4},
	{ID: 66, Name: "robot_change", Args: 2},
	{ID: 67, Name: "robot_chuck", Args: 2},
	{ID: 68, Name: "robot_drive", Args: 4},
	{ID: 69, Name: "robot_go_home", Args: 1},
	{ID: 70, Name: "robot_halt", Args: 2},
	{ID: 71, Name: "robot_hold", Args: 2},
	{ID: 72, Name: "robot_move", Args: 4},
	{ID: 73, Name: "robot_rotate", Args: 5},
	{ID: 74, Name: "robot_speed", Args: 3},
	{ID: 75, Name: "robot_unchuck", Args: 2},
	{ID: 76, Name: "robot_unhold", Args: 2},
	{ID: 77, Name: "robot_get_attribute", Args: 1},
	{ID: 78, Name: "robot_get_help", Args: 1},
	{ID: 79, Name: "robot_get_name", Args: 1},
	{ID: 80, Name: "robot_get_tag", Args: 1},
	{ID: 81, Name: "robot_put_tag", Args: 2},
	{ID: 82, Name: "robot_get_id", Args: 1},
	{ID: 83, Name: "robot_put_id", Args: 2},
	{ID: 84, Name: "robot_release", Args: 1},
	{ID: 85, Name: "task_get_variable", Args: 3},
	{ID: 86, Name: "task_get_variable_names", Args: 2},
	{ID: 87, Name: "task_execute", Args: 3},
	{ID: 88, Name: "task_start", Args: 3},
	{ID: 89, Name: "task_stop", Args: 3},
	{ID: 90, Name: "task_delete", Args: 2},
	{ID: 91, Name: "task_get_file_name", Args: 1},
	{ID: 92, Name: "task_get_attribute", Args: 1},
	{ID: 93, Name: "task_get_help", Args: 1},
	{ID: 94, Name: "task_get_name", Args: 1},
	{ID: 95, Name: "task_get_tag", Args: 1},
	{ID: 96, Name: "task_put_tag", Args: 2},
	{ID: 97, Name: "task_get_id", Args: 1},
	{ID: 98, Name: "task_put_id", Args: 2},
	{ID: 99, Name: "task_release", Args: 1},
	{ID: 100, Name: "variable_get_date_time", Args: 1},
	{ID: 101, Name: "variable_get_value", Args: 1},
	{ID: 102, Name: "variable_put_value", Args: 2},
	{ID: 103, Name: "variable_get_attribute", Args: 1},
	{ID: 104, Name: "variable_get_help", Args: 1},
	{ID: 105, Name: "variable_get_name", Args: 1},
	{ID: 106, Name: "variable_get_tag", Args: 1},
	{ID: 107, Name: "variable_put_tag", Args: 2},
	{ID: 108, Name: "variable_get_id", Args: 1},
	{ID: 109, Name: "variable_put_id", Args: 2},
	{ID: 110, Name: "variable_get_microsecond", Args: 1},
	{ID: 111, Name: "variable_release", Args: 1},
	{ID: 112, Name: "command_execute", Args: 2},
	{ID: 113, Name: "command_cancel", Args: 1},
	{ID: 114, Name: "command_get_timeout", Args: 1},
	{ID: 115, Name: "command_put_timeout", Args: 2},
	{ID: 116, Name: "command_get_state", Args: 1},
	{ID: 117, Name: "command_get_parameters", Args: 1},
	{ID: 118, Name: "command_put_parameters", Args: 2},
	{ID: 119, Name: "command_get_result", Args: 1},
	{ID: 120, Name: "command_get_attribute", Args: 1},
	{ID: 121, Name: "command_get_help", Args: 1},
	{ID: 122, Name: "command_get_name", Args: 1},
	{ID: 123, Name: "command_get_tag", Args: 1},
	{ID: 124, Name: "command_put_tag", Args: 2},
	{ID: 125, Name: "command_get_id", Args: 1},
	{ID: 126, Name: "command_put_id", Args: 2},
	{ID: 127, Name: "command_release", Args: 1},
	{ID: 128, Name: "message_reply", Args: 2},
	{ID: 129, Name: "message_clear", Args: 1},
	{ID: 130, Name: "message_get_date_time", Args: 1},
	{ID: 131, Name: "message_get_description", Args: 1},
	{ID: 132, Name: "message_get_destination", Args: 1},
	{ID: 133, Name: "message_get_number", Args: 1},
	{ID: 134, Name: "message_get_serial_number", Args: 1},
	{ID: 135, Name: "message_get_source", Args: 1},
	{ID: 136, Name: "message_get_value", Args: 1},
	{ID: 137, Name: "message_release", Args: 1},
}

// byName indexes Catalogue for Lookup.
var byName = func() map[string]Op {
	m := make(map[string]Op, len(Catalogue))
	for _, op := range Catalogue {
		m[op.Name] = op
	}
	return m
}()

// Lookup returns the catalogue entry for name and whether it was found.
func Lookup(name string) (Op, bool) {
	op, ok := byName[name]
	return op, ok
}

// Function ID constants, one per catalogue entry, named for direct use
// where a caller wants the numeric ID without going through Lookup.
const (
	ServiceStart                int32 = 1
	ServiceStop                 int32 = 2
	ControllerConnect           int32 = 3
	ControllerDisconnect        int32 = 4
	ControllerGetExtension      int32 = 5
	ControllerGetFile           int32 = 6
	ControllerGetRobot          int32 = 7
	ControllerGetTask           int32 = 8
	ControllerGetVariable       int32 = 9
	ControllerGetCommand        int32 = 10
	ControllerGetExtensionNames int32 = 11
	ControllerGetFileNames      int32 = 12
	ControllerGetRobotNames     int32 = 13
	ControllerGetTaskNames      int32 = 14
	ControllerGetVariableNames  int32 = 15
	ControllerGetCommandNames   int32 = 16
	ControllerExecute           int32 = 17
	ControllerGetMessage        int32 = 18
	ControllerGetAttribute      int32 = 19
	ControllerGetHelp           int32 = 20
	ControllerGetName           int32 = 21
	ControllerGetTag            int32 = 22
	ControllerPutTag            int32 = 23
	ControllerGetId             int32 = 24
	ControllerPutId             int32 = 25
	ExtensionGetVariable        int32 = 26
	ExtensionGetVariableNames   int32 = 27
	ExtensionExecute            int32 = 28
	ExtensionGetAttribute       int32 = 29
	ExtensionGetHelp            int32 = 30
	ExtensionGetName            int32 = 31
	ExtensionGetTag             int32 = 32
	ExtensionPutTag             int32 = 33
	ExtensionGetId              int32 = 34
	ExtensionPutId              int32 = 35
	ExtensionRelease            int32 = 36
	FileGetFile                 int32 = 37
	FileGetVariable             int32 = 38
	FileGetFileNames            int32 = 39
	FileGetVariableNames        int32 = 40
	FileExecute                 int32 = 41
	FileCopy                    int32 = 42
	FileDelete                  int32 = 43
	FileMove                    int32 = 44
	FileRun                     int32 = 45
	FileGetDateCreated          int32 = 46
	FileGetDateLastAccessed     int32 = 47
	FileGetDateLastModified     int32 = 48
	FileGetPath                 int32 = 49
	FileGetSize                 int32 = 50
	FileGetType                 int32 = 51
	FileGetValue                int32 = 52
	FilePutValue                int32 = 53
	FileGetAttribute            int32 = 54
	FileGetHelp                 int32 = 55
	FileGetName                 int32 = 56
	FileGetTag                  int32 = 57
	FilePutTag                  int32 = 58
	FileGetId                   int32 = 59
	FilePutId                   int32 = 60
	FileRelease                 int32 = 61
	RobotGetVariable            int32 = 62
	RobotGetVariableNames       int32 = 63
	RobotExecute                int32 = 64
	RobotAccelerate             int32 = 65
	RobotChange                 int32 = 66
	RobotChuck                  int32 = 67
	RobotDrive                  int32 = 68
	RobotGoHome                 int32 = 69
	RobotHalt                   int32 = 70
	RobotHold                   int32 = 71
	RobotMove                   int32 = 72
	RobotRotate                 int32 = 73
	RobotSpeed                  int32 = 74
	RobotUnchuck                int32 = 75
	RobotUnhold                 int32 = 76
	RobotGetAttribute           int32 = 77
	RobotGetHelp                int32 = 78
	RobotGetName                int32 = 79
	RobotGetTag                 int32 = 80
	RobotPutTag                 int32 = 81
	RobotGetId                  int32 = 82
	RobotPutId                  int32 = 83
	RobotRelease                int32 = 84
	TaskGetVariable             int32 = 85
	TaskGetVariableNames        int32 = 86
	TaskExecute                 int32 = 87
	TaskStart                   int32 = 88
	TaskStop                    int32 = 89
	TaskDelete                  int32 = 90
	TaskGetFileName             int32 = 91
	TaskGetAttribute            int32 = 92
	TaskGetHelp                 int32 = 93
	TaskGetName                 int32 = 94
	TaskGetTag                  int32 = 95
	TaskPutTag                  int32 = 96
	TaskGetId                   int32 = 97
	TaskPutId                   int32 = 98
	TaskRelease                 int32 = 99
	VariableGetDateTime         int32 = 100
	VariableGetValue            int32 = 101
	VariablePutValue            int32 = 102
	VariableGetAttribute        int32 = 103
	VariableGetHelp             int32 = 104
	VariableGetName             int32 = 105
	VariableGetTag              int32 = 106
	VariablePutTag              int32 = 107
	VariableGetId               int32 = 108
	VariablePutId               int32 = 109
	VariableGetMicrosecond      int32 = 110
	VariableRelease             int32 = 111
	CommandExecute              int32 = 112
	CommandCancel               int32 = 113
	CommandGetTimeout           int32 = 114
	CommandPutTimeout           int32 = 115
	CommandGetState             int32 = 116
	CommandGetParameters        int32 = 117
	CommandPutParameters        int32 = 118
	CommandGetResult            int32 = 119
	CommandGetAttribute         int32 = 120
	CommandGetHelp              int32 = 121
	CommandGetName              int32 = 122
	CommandGetTag               int32 = 123
	CommandPutTag               int32 = 124
	CommandGetId                int32 = 125
	CommandPutId                int32 = 126
	CommandRelease              int32 = 127
	MessageReply                int32 = 128
	MessageClear                int32 = 129
	MessageGetDateTime          int32 = 130
	MessageGetDescription       int32 = 131
	MessageGetDestination       int32 = 132
	MessageGetNumber            int32 = 133
	MessageGetSerialNumber      int32 = 134
	MessageGetSource            int32 = 135
	MessageGetValue             int32 = 136
	MessageRelease              int32 = 137
)
